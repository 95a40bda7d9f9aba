package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/maintenance/usecases"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// MaintenanceHandler manages preventive maintenance scheduling.
type MaintenanceHandler struct {
	service *usecases.MaintenanceService
	logger  logger.Interface
}

func NewMaintenanceHandler(service *usecases.MaintenanceService, log logger.Interface) *MaintenanceHandler {
	return &MaintenanceHandler{service: service, logger: log}
}

type ScheduleMaintenanceRequest struct {
	DeviceID     uint      `json:"device_id" binding:"required"`
	TechnicianID *uint     `json:"technician_id"`
	Description  string    `json:"description" binding:"required"`
	DueDate      time.Time `json:"due_date" binding:"required"`
}

type CompleteMaintenanceRequest struct {
	Notes string `json:"notes"`
}

func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	var req ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid schedule maintenance request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Schedule(c.Request.Context(), usecases.ScheduleMaintenanceCommand{
		DeviceID:     req.DeviceID,
		TechnicianID: req.TechnicianID,
		Description:  req.Description,
		DueDate:      req.DueDate.UTC(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Maintenance scheduled")
}

func (h *MaintenanceHandler) Complete(c *gin.Context) {
	recordID, err := utils.ParseIDParam(c, "id", "maintenance record")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.service.Complete(c.Request.Context(), usecases.CompleteMaintenanceCommand{
		RecordID:    recordID,
		CompletedBy: userID,
		Notes:       req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance completed", result)
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	query := usecases.ListMaintenanceQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}
	if id, ok := queryUint(c, "device_id"); ok {
		query.DeviceID = &id
	}
	if id, ok := queryUint(c, "technician_id"); ok {
		query.TechnicianID = &id
	}
	if raw := c.Query("completed"); raw != "" {
		completed := raw == "true"
		query.Completed = &completed
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Records, result.Total, result.Page, result.PageSize)
}
