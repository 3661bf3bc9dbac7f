package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, callerID uint, role models.UserRole, jobID uint) (*models.Application, error)
	UpdateStatus(db *gorm.DB, callerID uint, role models.UserRole, applicationID uint, status models.ApplicationStatus) (*models.Application, error)
	ListForJob(db *gorm.DB, jobID uint) ([]models.Application, error)
	ListForJobSeeker(db *gorm.DB, jobSeekerID uint) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	notifier ApplicationNotifier
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notifier ApplicationNotifier,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Apply - отклик соискателя. Дубликат отсекает уникальный индекс (job_id, job_seeker_id).
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, callerID uint, role models.UserRole, jobID uint) (*models.Application, error) {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		return nil, mapJobError(err)
	}

	if !auth.CanApply(role) {
		return nil, apperrors.ErrOnlyJobSeekersApply
	}

	app := &models.Application{
		JobID:       jobID,
		JobSeekerID: callerID,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.appRepo.CreateIfAbsent(db, app); err != nil {
		if errors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Application submitted", "application_id", app.ID, "job_id", jobID)
	return app, nil
}

// UpdateStatus - смена статуса отклика работодателем-владельцем вакансии.
// Письмо соискателю отправляется после коммита и не влияет на ответ.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, callerID uint, role models.UserRole, applicationID uint, status models.ApplicationStatus) (*models.Application, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	var updated *models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		app, err := s.appRepo.FindByID(tx, applicationID)
		if err != nil {
			if errors.Is(err, repositories.ErrApplicationNotFound) {
				return apperrors.ErrApplicationNotFound
			}
			return apperrors.InternalError(err)
		}

		if app.Job == nil || !auth.CanManageApplication(role, callerID, app.Job.EmployerID) {
			return apperrors.ErrNotApplicationOwner
		}

		if err := s.appRepo.UpdateStatus(tx, app, status); err != nil {
			return apperrors.InternalError(err)
		}
		updated = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyApplicant(db, updated)
	return updated, nil
}

func (s *ApplicationServiceImpl) notifyApplicant(db *gorm.DB, app *models.Application) {
	if s.notifier == nil {
		return
	}
	ctx := db.Statement.Context

	seeker, err := s.userRepo.FindByID(db, app.JobSeekerID)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load applicant for notification", err, "application_id", app.ID)
		return
	}
	s.notifier.ApplicationStatusChanged(ctx, seeker, app.Job, app.Status)
}

// ListForJob - все отклики на вакансию вместе с данными соискателей
func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, jobID uint) ([]models.Application, error) {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		return nil, mapJobError(err)
	}

	apps, err := s.appRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) ListForJobSeeker(db *gorm.DB, jobSeekerID uint) ([]models.Application, error) {
	apps, err := s.appRepo.FindByJobSeeker(db, jobSeekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}
