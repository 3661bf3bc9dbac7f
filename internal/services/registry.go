package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	JobService         JobService
	ApplicationService ApplicationService
	ProfileService     ProfileService
}

// Dependencies - внешние зависимости сервисов
type Dependencies struct {
	Tokens        TokenIssuer
	Storage       storage.Storage
	Notifier      ApplicationNotifier
	MaxResumeSize int64
}

// NewServiceContainer собирает сервисы поверх stateless-репозиториев
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()
	profileRepo := repositories.NewProfileRepository()

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, deps.Tokens),
		UserService:        NewUserService(userRepo),
		JobService:         NewJobService(jobRepo),
		ApplicationService: NewApplicationService(appRepo, jobRepo, userRepo, deps.Notifier),
		ProfileService:     NewProfileService(profileRepo, deps.Storage, deps.MaxResumeSize),
	}
}
