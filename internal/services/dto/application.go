package dto

import "jobboard_backend/internal/models"

// UpdateApplicationStatusRequest - новый статус отклика.
// Принадлежность к перечислению проверяет сервис.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}
