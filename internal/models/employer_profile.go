package models

type EmployerProfile struct {
	BaseModel
	UserID         uint    `gorm:"uniqueIndex;not null" json:"userId"`
	CompanyName    string  `gorm:"size:255;not null" json:"companyName"`
	CompanyWebsite *string `json:"companyWebsite"`
}
