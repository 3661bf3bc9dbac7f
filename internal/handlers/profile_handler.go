package handlers

import (
	"errors"
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartOverhead - запас на заголовки multipart сверх размера файла
const multipartOverhead = 1 << 20

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
	maxResumeSize  int64
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, maxResumeSize int64) *ProfileHandler {
	if maxResumeSize <= 0 {
		maxResumeSize = services.DefaultMaxResumeSize
	}
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		maxResumeSize:  maxResumeSize,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	profile.Use(h.RequireAuth())
	{
		profile.GET("", h.GetProfile)
		profile.POST("", h.CreateProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/resume", middleware.RequireRoles(models.UserRoleJobSeeker), h.UploadResume)
	}
}

// GetProfile godoc
// @Summary Профиль текущего пользователя
// @Description Тип профиля определяется ролью: EMPLOYER -> EmployerProfile, JOB_SEEKER -> JobSeekerProfile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.EmployerProfile
// @Success 200 {object} models.JobSeekerProfile
// @Failure 400 {object} apperrors.ErrorResponse "Invalid role"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, role, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(h.GetDB(c), userID, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfile godoc
// @Summary Создать профиль
// @Description Тело зависит от роли: dto.EmployerProfileRequest или dto.JobSeekerProfileRequest
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EmployerProfileRequest true "Профиль работодателя (для JOB_SEEKER - dto.JobSeekerProfileRequest)"
// @Success 201 {object} models.EmployerProfile
// @Failure 400 {object} apperrors.ErrorResponse "Профиль уже существует"
// @Router /api/profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, role, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	switch role {
	case models.UserRoleEmployer:
		var req dto.EmployerProfileRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		profile, err := h.profileService.CreateEmployerProfile(db, userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, profile)

	case models.UserRoleJobSeeker:
		var req dto.JobSeekerProfileRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		profile, err := h.profileService.CreateJobSeekerProfile(db, userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, profile)

	default:
		h.HandleServiceError(c, apperrors.ErrInvalidRole)
	}
}

// UpdateProfile godoc
// @Summary Обновить профиль
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EmployerProfileRequest true "Профиль работодателя (для JOB_SEEKER - dto.JobSeekerProfileRequest)"
// @Success 200 {object} models.EmployerProfile
// @Failure 404 {object} apperrors.ErrorResponse "Профиль не найден"
// @Router /api/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, role, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	switch role {
	case models.UserRoleEmployer:
		var req dto.EmployerProfileRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpdateEmployerProfile(db, userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)

	case models.UserRoleJobSeeker:
		var req dto.JobSeekerProfileRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpdateJobSeekerProfile(db, userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)

	default:
		h.HandleServiceError(c, apperrors.ErrInvalidRole)
	}
}

// UploadResume godoc
// @Summary Загрузить файл резюме
// @Description pdf, doc или docx. URL файла записывается в поле resume профиля соискателя.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл резюме"
// @Success 200 {object} models.JobSeekerProfile
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Job seeker profile not found"
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /api/profile/resume [post]
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	userID, role, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxResumeSize+multipartOverhead)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.HandleServiceError(c, apperrors.ErrFileTooLarge)
			return
		}
		h.HandleServiceError(c, apperrors.NewBadRequestError("Field 'file' is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	upload := &dto.ResumeUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}

	profile, err := h.profileService.UploadResume(c.Request.Context(), h.GetDB(c), userID, role, upload, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
