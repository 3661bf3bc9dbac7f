package models

type JobSeekerProfile struct {
	BaseModel
	UserID uint    `gorm:"uniqueIndex;not null" json:"userId"`
	Resume string  `gorm:"not null" json:"resume"`
	Skills *string `json:"skills"`
}
