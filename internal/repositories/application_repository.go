package repositories

import (
	"errors"

	"jobboard_backend/database"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationRepository - операции с откликами
type ApplicationRepository interface {
	// CreateIfAbsent вставляет отклик атомарно; повтор пары (job, seeker) -> ErrAlreadyApplied
	CreateIfAbsent(db *gorm.DB, app *models.Application) error

	FindByID(db *gorm.DB, id uint) (*models.Application, error)
	FindByJob(db *gorm.DB, jobID uint) ([]models.Application, error)
	FindByJobSeeker(db *gorm.DB, jobSeekerID uint) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, app *models.Application, status models.ApplicationStatus) error
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) CreateIfAbsent(db *gorm.DB, app *models.Application) error {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}, {Name: "job_seeker_id"}},
		DoNothing: true,
	}).Create(app)
	if result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			return ErrAlreadyApplied
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyApplied
	}
	return nil
}

func (r *applicationRepository) FindByID(db *gorm.DB, id uint) (*models.Application, error) {
	var app models.Application
	if err := db.Preload("Job").First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindByJob возвращает отклики вместе с данными соискателя и его профилем
func (r *applicationRepository) FindByJob(db *gorm.DB, jobID uint) ([]models.Application, error) {
	apps := []models.Application{}
	err := db.Preload("JobSeeker").Preload("JobSeeker.JobSeekerProfile").
		Where("job_id = ?", jobID).
		Order("created_at ASC, id ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByJobSeeker возвращает отклики соискателя вместе с вакансиями
func (r *applicationRepository) FindByJobSeeker(db *gorm.DB, jobSeekerID uint) ([]models.Application, error) {
	apps := []models.Application{}
	err := db.Preload("Job").
		Where("job_seeker_id = ?", jobSeekerID).
		Order("created_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(db *gorm.DB, app *models.Application, status models.ApplicationStatus) error {
	if err := db.Model(app).Update("status", status).Error; err != nil {
		return err
	}
	app.Status = status
	return nil
}
