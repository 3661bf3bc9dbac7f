package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/application")
	applications.Use(h.RequireAuth())
	{
		applications.POST("/apply/:id", h.Apply)
		applications.PUT("/status/:id", h.UpdateStatus)
		applications.GET("/job/:id", h.ListForJob)
		applications.GET("/myapplies", h.ListMine)
	}
}

// Apply godoc
// @Summary Откликнуться на вакансию
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID вакансии"
// @Success 201 {object} models.Application
// @Failure 400 {object} apperrors.ErrorResponse "Повторный отклик"
// @Failure 403 {object} apperrors.ErrorResponse "Только соискатель"
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /api/application/apply/{id} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, role, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	app, err := h.applicationService.Apply(h.GetDB(c), userID, role, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateStatus godoc
// @Summary Изменить статус отклика
// @Description Только работодатель, владеющий вакансией. Соискатель получает письмо.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID отклика"
// @Param request body dto.UpdateApplicationStatusRequest true "PENDING | ACCEPTED | REJECTED"
// @Success 200 {object} models.Application
// @Failure 400 {object} apperrors.ErrorResponse "Invalid application status"
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Application not found"
// @Router /api/application/status/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, role, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	appID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(h.GetDB(c), userID, role, appID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListForJob godoc
// @Summary Отклики на вакансию
// @Description С данными соискателя и его профилем
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID вакансии"
// @Success 200 {array} models.Application
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /api/application/job/{id} [get]
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	apps, err := h.applicationService.ListForJob(h.GetDB(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListMine godoc
// @Summary Мои отклики
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Application
// @Router /api/application/myapplies [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, _, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForJobSeeker(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
