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

type JobService interface {
	ListJobs(db *gorm.DB) ([]models.Job, error)
	GetJob(db *gorm.DB, jobID uint) (*models.Job, error)
	ListEmployerJobs(db *gorm.DB, employerID uint) ([]models.Job, error)
	CreateJob(db *gorm.DB, callerID uint, role models.UserRole, req *dto.JobRequest) (*models.Job, error)
	UpdateJob(db *gorm.DB, callerID, jobID uint, req *dto.JobRequest) (*models.Job, error)
	DeleteJob(db *gorm.DB, callerID, jobID uint) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, mapJobError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListEmployerJobs(db *gorm.DB, employerID uint) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// CreateJob - публикация вакансии; владельцем становится вызывающий
func (s *JobServiceImpl) CreateJob(db *gorm.DB, callerID uint, role models.UserRole, req *dto.JobRequest) (*models.Job, error) {
	if !auth.CanCreateJob(role) {
		return nil, apperrors.ErrOnlyEmployersCreateJobs
	}

	job := &models.Job{EmployerID: callerID}
	applyJobFields(job, req)

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Job created", "job_id", job.ID, "employer_id", callerID)
	return job, nil
}

// UpdateJob - чтение, проверка владельца и запись в одной транзакции
func (s *JobServiceImpl) UpdateJob(db *gorm.DB, callerID, jobID uint, req *dto.JobRequest) (*models.Job, error) {
	var updated *models.Job
	err := db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByIDForUpdate(tx, jobID)
		if err != nil {
			return mapJobError(err)
		}
		if !auth.CanMutateJob(callerID, job.EmployerID) {
			return apperrors.ErrNotJobOwnerUpdate
		}

		applyJobFields(job, req)
		if err := s.jobRepo.Update(tx, job); err != nil {
			return apperrors.InternalError(err)
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteJob - удаление вакансии владельцем; отклики удаляются каскадно
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, callerID, jobID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByIDForUpdate(tx, jobID)
		if err != nil {
			return mapJobError(err)
		}
		if !auth.CanMutateJob(callerID, job.EmployerID) {
			return apperrors.ErrNotJobOwnerDelete
		}

		if err := s.jobRepo.Delete(tx, job.ID); err != nil {
			return mapJobError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(db.Statement.Context, "Job deleted", "job_id", jobID, "employer_id", callerID)
	return nil
}

func applyJobFields(job *models.Job, req *dto.JobRequest) {
	job.Title = req.Title
	job.Description = req.Description
	job.Company = req.Company
	job.Location = req.Location
	job.Category = req.Category
	job.Salary = req.Salary
}

func mapJobError(err error) error {
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrJobNotFound
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
