package models

type Job struct {
	BaseModel
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Company     string  `gorm:"size:255;not null" json:"company"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	Category    string  `gorm:"size:100;not null;index" json:"category"`
	Salary      float64 `gorm:"not null" json:"salary"`
	EmployerID  uint    `gorm:"not null;index" json:"employerId"`

	Employer *User `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`
}
