package dto

// EmployerProfileRequest - профиль работодателя
type EmployerProfileRequest struct {
	CompanyName    string  `json:"companyName" validate:"required,notblank,max=255"`
	CompanyWebsite *string `json:"companyWebsite,omitempty" validate:"omitempty,url"`
}

// JobSeekerProfileRequest - профиль соискателя
type JobSeekerProfileRequest struct {
	Resume string  `json:"resume" validate:"required,notblank"`
	Skills *string `json:"skills,omitempty"`
}

// ResumeUpload - загруженный файл резюме
type ResumeUpload struct {
	FileName    string
	ContentType string
	Size        int64
}
