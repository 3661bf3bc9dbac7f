package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public routes
	public := rg.Group("/job")
	{
		public.GET("", h.ListJobs)
		public.GET("/:id", h.GetJob)
	}

	// Protected routes
	protected := rg.Group("/job")
	protected.Use(h.RequireAuth())
	{
		protected.GET("/employer", h.ListMyJobs)
		protected.POST("/create", h.CreateJob)
		protected.PUT("/:id", h.UpdateJob)
		protected.DELETE("/:id", h.DeleteJob)
	}
}

// ListJobs godoc
// @Summary Все вакансии
// @Description Сначала новые
// @Tags jobs
// @Produce json
// @Success 200 {array} models.Job
// @Router /api/job [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Вакансия по id
// @Tags jobs
// @Produce json
// @Param id path int true "ID вакансии"
// @Success 200 {object} models.Job
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /api/job/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	job, err := h.jobService.GetJob(h.GetDB(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListMyJobs godoc
// @Summary Вакансии текущего работодателя
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Job
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/job/employer [get]
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, _, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListEmployerJobs(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob godoc
// @Summary Создать вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JobRequest true "Вакансия"
// @Success 201 {object} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse "Только работодатель"
// @Router /api/job/create [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, role, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), userID, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Обновить вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID вакансии"
// @Param request body dto.JobRequest true "Вакансия"
// @Success 200 {object} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse "Чужая вакансия"
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /api/job/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, _, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(h.GetDB(c), userID, jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Удалить вакансию
// @Description Отклики на вакансию удаляются вместе с ней
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID вакансии"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/job/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, _, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.DeleteJob(h.GetDB(c), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
