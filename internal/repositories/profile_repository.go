package repositories

import (
	"errors"

	"jobboard_backend/database"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository - профили работодателей и соискателей (1-1 с пользователем)
type ProfileRepository interface {
	// Employer profile
	CreateEmployerIfAbsent(db *gorm.DB, profile *models.EmployerProfile) error
	FindEmployerByUserID(db *gorm.DB, userID uint) (*models.EmployerProfile, error)
	UpdateEmployer(db *gorm.DB, profile *models.EmployerProfile) error

	// Job seeker profile
	CreateJobSeekerIfAbsent(db *gorm.DB, profile *models.JobSeekerProfile) error
	FindJobSeekerByUserID(db *gorm.DB, userID uint) (*models.JobSeekerProfile, error)
	UpdateJobSeeker(db *gorm.DB, profile *models.JobSeekerProfile) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

// insertIfAbsent - общая вставка "если нет записи с таким user_id"
func insertIfAbsent(db *gorm.DB, value interface{}) error {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(value)
	if result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			return ErrProfileExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileExists
	}
	return nil
}

func (r *profileRepository) CreateEmployerIfAbsent(db *gorm.DB, profile *models.EmployerProfile) error {
	return insertIfAbsent(db, profile)
}

func (r *profileRepository) FindEmployerByUserID(db *gorm.DB, userID uint) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateEmployer(db *gorm.DB, profile *models.EmployerProfile) error {
	return db.Model(profile).Select("company_name", "company_website").Updates(profile).Error
}

func (r *profileRepository) CreateJobSeekerIfAbsent(db *gorm.DB, profile *models.JobSeekerProfile) error {
	return insertIfAbsent(db, profile)
}

func (r *profileRepository) FindJobSeekerByUserID(db *gorm.DB, userID uint) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateJobSeeker(db *gorm.DB, profile *models.JobSeekerProfile) error {
	return db.Model(profile).Select("resume", "skills").Updates(profile).Error
}
