package database

import (
	"fmt"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.EmployerProfile{},
		&models.JobSeekerProfile{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}
