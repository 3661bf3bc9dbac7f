package dto

// JobRequest - поля вакансии (создание и обновление)
type JobRequest struct {
	Title       string  `json:"title" validate:"required,notblank,max=255"`
	Description string  `json:"description" validate:"required,notblank"`
	Company     string  `json:"company" validate:"required,notblank,max=255"`
	Location    string  `json:"location" validate:"required,notblank,max=255"`
	Category    string  `json:"category" validate:"required,notblank,max=100"`
	Salary      float64 `json:"salary" validate:"required,gt=0"`
}
