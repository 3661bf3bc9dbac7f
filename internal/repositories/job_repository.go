package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepository - операции с вакансиями
type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id uint) (*models.Job, error)

	// FindByIDForUpdate читает вакансию с блокировкой строки (внутри транзакции)
	FindByIDForUpdate(db *gorm.DB, id uint) (*models.Job, error)

	FindAll(db *gorm.DB) ([]models.Job, error)
	FindByEmployer(db *gorm.DB, employerID uint) ([]models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id uint) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id uint) (*models.Job, error) {
	return r.find(db, id)
}

func (r *jobRepository) FindByIDForUpdate(db *gorm.DB, id uint) (*models.Job, error) {
	// SQLite не поддерживает FOR UPDATE, там транзакция и так единственная
	if db.Dialector.Name() == "sqlite" {
		return r.find(db, id)
	}
	return r.find(db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *jobRepository) find(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindAll(db *gorm.DB) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := db.Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) FindByEmployer(db *gorm.DB, employerID uint) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := db.Where("employer_id = ?", employerID).Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(db *gorm.DB, job *models.Job) error {
	// Существование проверено сервисом в той же транзакции.
	// MySQL возвращает 0 затронутых строк, если значения не изменились.
	return db.Model(job).Select("title", "description", "company", "location", "category", "salary").Updates(job).Error
}

func (r *jobRepository) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Job{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
