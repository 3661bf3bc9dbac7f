package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/metrics"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.InitWithLevel(cfg.Server.Env, cfg.Server.LogLevel)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Debug:  cfg.IsDevelopment(),
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ginRouter, limiter, err := buildRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	workers.NewRateLimitWorker(limiter, 0).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает зависимости, сервисы и хэндлеры и возвращает готовый *gin.Engine
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	router, _, err := buildRouter(cfg, gormDB)
	return router, err
}

func buildRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *middleware.RateLimiter, error) {
	apperrors.SetDebug(cfg.IsDevelopment())

	tokens, err := auth.NewJWTManager(cfg.JWT.Secret, cfg.TokenTTL())
	if err != nil {
		return nil, nil, err
	}

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider, err := initializeEmail(cfg)
	if err != nil {
		return nil, nil, err
	}

	appMetrics := metrics.New()

	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Tokens:        tokens,
		Storage:       storageInstance,
		Notifier:      services.NewEmailNotifier(emailProvider, appMetrics),
		MaxResumeSize: cfg.Upload.MaxResumeSize,
	})

	// 2. Хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer, middleware.AuthMiddleware(tokens, appMetrics), tokens.TTL())

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB, appMetrics)

	if local, ok := storageInstance.(*storage.LocalStorage); ok && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		ginRouter.Static(cfg.Storage.BaseURL, local.BasePath())
	}

	// 4. Маршруты
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, appMetrics)
	routes.RegisterRoutes(ginRouter, appHandlers, routes.Options{
		AuthMiddlewares: []gin.HandlerFunc{limiter.Middleware()},
		MetricsHandler:  appMetrics.Handler(),
		Swagger:         cfg.Server.Env != "production",
	})

	return ginRouter, limiter, nil
}

// initializeEmail - SMTP, если включен в конфиге, иначе письма только логируются
func initializeEmail(cfg *config.Config) (email.Provider, error) {
	if !cfg.Email.Enabled {
		logger.Warn("Email sending is disabled, using no-op provider")
		return &email.NoopProvider{}, nil
	}

	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	provider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, templates)
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}
	logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	return provider, nil
}

// tokenTTL задает время жизни cookie с токеном
func initializeHandlers(cfg *config.Config, services *services.ServiceContainer, authMiddleware gin.HandlerFunc, tokenTTL time.Duration) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, authMiddleware)

	cookie := handlers.CookieConfig{
		Secure: cfg.Cookie.Secure,
		Domain: cfg.Cookie.Domain,
		MaxAge: int(tokenTTL.Seconds()),
	}

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, services.AuthService, cookie),
		UserHandler:        handlers.NewUserHandler(baseHandler, services.UserService),
		JobHandler:         handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, services.ProfileService, cfg.Upload.MaxResumeSize),
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, m *metrics.Metrics) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	router.MaxMultipartMemory = 8 << 20
	return router
}
