package routes

import (
	"net/http"

	_ "jobboard_backend/docs"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options - необязательные части HTTP-поверхности
type Options struct {
	// AuthMiddlewares вешаются на группу /api/auth (rate limit)
	AuthMiddlewares []gin.HandlerFunc
	// MetricsHandler отдается на GET /metrics, если задан
	MetricsHandler http.Handler
	// Swagger включает /swagger/*any
	Swagger bool
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	opts Options,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, opts.AuthMiddlewares...)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
	}

	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	if opts.MetricsHandler != nil {
		ginRouter.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	if opts.Swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI registered", "path", "/swagger/index.html")
	}
}
