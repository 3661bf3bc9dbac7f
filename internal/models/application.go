package models

// Application - отклик соискателя на вакансию.
// Пара (job_id, job_seeker_id) уникальна: это единственная защита от двойного отклика.
type Application struct {
	BaseModel
	JobID       uint              `gorm:"not null;uniqueIndex:idx_application_job_seeker" json:"jobId"`
	JobSeekerID uint              `gorm:"not null;uniqueIndex:idx_application_job_seeker;index" json:"jobSeekerId"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	Job       *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	JobSeeker *User `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"jobSeeker,omitempty"`
}
