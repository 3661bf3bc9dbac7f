package dto

import "jobboard_backend/internal/models"

// SignupRequest - запрос регистрации
type SignupRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Name      string          `json:"name" validate:"required,notblank"`
	Password  string          `json:"password" validate:"required,min=6"`
	Role      models.UserRole `json:"role" validate:"required,is-user-role"`
	ImagePath *string         `json:"imagePath,omitempty" validate:"omitempty,max=2048"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - пользователь и токен доступа
type LoginResponse struct {
	Data  *models.User `json:"data"`
	Token string       `json:"token"`
}
