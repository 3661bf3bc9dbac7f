package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// TokenIssuer выпускает токены доступа (auth.JWTManager)
type TokenIssuer interface {
	Issue(userID uint, role models.UserRole) (string, error)
}

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   TokenIssuer
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenIssuer) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup - регистрация нового пользователя.
// Занятость email проверяет уникальный индекс, отдельного чтения нет.
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*models.User, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
		ImagePath:    req.ImagePath,
	}

	if err := s.userRepo.CreateIfAbsent(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(db.Statement.Context, "User registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidUser
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{Data: user, Token: token}, nil
}
