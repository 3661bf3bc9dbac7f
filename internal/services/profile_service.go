package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMaxResumeSize - 5 MiB
const DefaultMaxResumeSize int64 = 5 << 20

var allowedResumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ProfileService - профиль определяется ролью из токена:
// EMPLOYER -> EmployerProfile, JOB_SEEKER -> JobSeekerProfile.
type ProfileService interface {
	GetProfile(db *gorm.DB, userID uint, role models.UserRole) (interface{}, error)

	CreateEmployerProfile(db *gorm.DB, userID uint, req *dto.EmployerProfileRequest) (*models.EmployerProfile, error)
	UpdateEmployerProfile(db *gorm.DB, userID uint, req *dto.EmployerProfileRequest) (*models.EmployerProfile, error)

	CreateJobSeekerProfile(db *gorm.DB, userID uint, req *dto.JobSeekerProfileRequest) (*models.JobSeekerProfile, error)
	UpdateJobSeekerProfile(db *gorm.DB, userID uint, req *dto.JobSeekerProfileRequest) (*models.JobSeekerProfile, error)

	UploadResume(ctx context.Context, db *gorm.DB, userID uint, role models.UserRole, file *dto.ResumeUpload, content io.Reader) (*models.JobSeekerProfile, error)
}

type ProfileServiceImpl struct {
	profileRepo   repositories.ProfileRepository
	storage       storage.Storage
	maxResumeSize int64
}

func NewProfileService(profileRepo repositories.ProfileRepository, store storage.Storage, maxResumeSize int64) ProfileService {
	if maxResumeSize <= 0 {
		maxResumeSize = DefaultMaxResumeSize
	}
	return &ProfileServiceImpl{
		profileRepo:   profileRepo,
		storage:       store,
		maxResumeSize: maxResumeSize,
	}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID uint, role models.UserRole) (interface{}, error) {
	switch role {
	case models.UserRoleEmployer:
		profile, err := s.profileRepo.FindEmployerByUserID(db, userID)
		if err != nil {
			return nil, mapProfileError(err, role)
		}
		return profile, nil
	case models.UserRoleJobSeeker:
		profile, err := s.profileRepo.FindJobSeekerByUserID(db, userID)
		if err != nil {
			return nil, mapProfileError(err, role)
		}
		return profile, nil
	default:
		return nil, apperrors.ErrInvalidRole
	}
}

// --- Employer ---

func (s *ProfileServiceImpl) CreateEmployerProfile(db *gorm.DB, userID uint, req *dto.EmployerProfileRequest) (*models.EmployerProfile, error) {
	profile := &models.EmployerProfile{
		UserID:         userID,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
	}
	if err := s.profileRepo.CreateEmployerIfAbsent(db, profile); err != nil {
		return nil, mapProfileError(err, models.UserRoleEmployer)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateEmployerProfile(db *gorm.DB, userID uint, req *dto.EmployerProfileRequest) (*models.EmployerProfile, error) {
	var updated *models.EmployerProfile
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindEmployerByUserID(tx, userID)
		if err != nil {
			return mapProfileError(err, models.UserRoleEmployer)
		}

		profile.CompanyName = req.CompanyName
		profile.CompanyWebsite = req.CompanyWebsite
		if err := s.profileRepo.UpdateEmployer(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// --- Job seeker ---

func (s *ProfileServiceImpl) CreateJobSeekerProfile(db *gorm.DB, userID uint, req *dto.JobSeekerProfileRequest) (*models.JobSeekerProfile, error) {
	profile := &models.JobSeekerProfile{
		UserID: userID,
		Resume: req.Resume,
		Skills: req.Skills,
	}
	if err := s.profileRepo.CreateJobSeekerIfAbsent(db, profile); err != nil {
		return nil, mapProfileError(err, models.UserRoleJobSeeker)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateJobSeekerProfile(db *gorm.DB, userID uint, req *dto.JobSeekerProfileRequest) (*models.JobSeekerProfile, error) {
	var updated *models.JobSeekerProfile
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindJobSeekerByUserID(tx, userID)
		if err != nil {
			return mapProfileError(err, models.UserRoleJobSeeker)
		}

		profile.Resume = req.Resume
		profile.Skills = req.Skills
		if err := s.profileRepo.UpdateJobSeeker(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UploadResume сохраняет файл резюме в хранилище и записывает его URL в профиль соискателя
func (s *ProfileServiceImpl) UploadResume(ctx context.Context, db *gorm.DB, userID uint, role models.UserRole, file *dto.ResumeUpload, content io.Reader) (*models.JobSeekerProfile, error) {
	if !auth.CanUploadResume(role) {
		return nil, apperrors.ErrResumeOnlyForJobSeekers
	}

	ext := strings.ToLower(filepath.Ext(file.FileName))
	contentType, ok := allowedResumeTypes[ext]
	if !ok {
		return nil, apperrors.ErrInvalidFileType
	}
	if file.Size > s.maxResumeSize {
		return nil, apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"maxSize": s.maxResumeSize})
	}

	profile, err := s.profileRepo.FindJobSeekerByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err, models.UserRoleJobSeeker)
	}

	path := fmt.Sprintf("resumes/%d/%s%s", userID, uuid.NewString(), ext)
	if err := s.storage.Save(ctx, path, io.LimitReader(content, s.maxResumeSize+1), contentType); err != nil {
		return nil, apperrors.ErrStorageUnavailable(err)
	}

	profile.Resume = s.storage.GetURL(path)
	if err := s.profileRepo.UpdateJobSeeker(db, profile); err != nil {
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			logger.CtxWithError(ctx, "Failed to remove orphaned resume", delErr, "path", path)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Resume uploaded", "user_id", userID, "path", path)
	return profile, nil
}

func mapProfileError(err error, role models.UserRole) error {
	switch {
	case errors.Is(err, repositories.ErrProfileNotFound):
		if role == models.UserRoleEmployer {
			return apperrors.ErrEmployerProfileNotFound
		}
		return apperrors.ErrJobSeekerProfileNotFound
	case errors.Is(err, repositories.ErrProfileExists):
		if role == models.UserRoleEmployer {
			return apperrors.ErrEmployerProfileExists
		}
		return apperrors.ErrJobSeekerProfileExists
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
