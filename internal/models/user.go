package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string   `gorm:"size:255;not null" json:"name"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	ImagePath    *string  `json:"imagePath,omitempty"`

	// Relations
	EmployerProfile  *EmployerProfile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"employerProfile,omitempty"`
	JobSeekerProfile *JobSeekerProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"jobSeekerProfile,omitempty"`
}
