package middleware

import (
	"errors"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/metrics"
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// TokenVerifier - проверка токена доступа (auth.JWTManager)
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware - middleware проверки JWT.
// Принимается только заголовок "Authorization: Bearer <token>".
func AuthMiddleware(tokens TokenVerifier, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			m.AuthFailed("missing")
			apperrors.AbortWithError(c, apperrors.ErrMissingToken)
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(tokenStr))
		if err != nil {
			m.AuthFailed("invalid")
			logger.CtxDebug(c.Request.Context(), "Token rejected", "error", err)
			apperrors.AbortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		// Сохраняем claims в контекст
		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireRoles - пропускает только указанные роли (после AuthMiddleware)
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, err := GetRole(c)
		if err != nil {
			apperrors.AbortWithError(c, apperrors.ErrMissingToken)
			return
		}

		if !roleSet[role] {
			apperrors.AbortWithError(c, apperrors.ErrInsufficientRole)
			return
		}

		c.Next()
	}
}

var errNoIdentity = errors.New("no authenticated identity in context")

// GetUserID извлекает ID пользователя, выставленный AuthMiddleware
func GetUserID(c *gin.Context) (uint, error) {
	v, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return 0, errNoIdentity
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errNoIdentity
	}
	return id, nil
}

// GetRole извлекает роль пользователя, выставленную AuthMiddleware
func GetRole(c *gin.Context) (models.UserRole, error) {
	v, exists := c.Get(contextkeys.RoleKey)
	if !exists {
		return "", errNoIdentity
	}
	role, ok := v.(models.UserRole)
	if !ok {
		return "", errNoIdentity
	}
	return role, nil
}
