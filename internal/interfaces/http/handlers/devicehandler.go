package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/device/usecases"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// DeviceHandler manages the equipment registry.
type DeviceHandler struct {
	registerUseCase *usecases.RegisterDeviceUseCase
	updateUseCase   *usecases.UpdateDeviceUseCase
	getUseCase      *usecases.GetDeviceUseCase
	listUseCase     *usecases.ListDevicesUseCase
	labelUseCase    *usecases.GenerateLabelUseCase
	logger          logger.Interface
}

func NewDeviceHandler(
	registerUC *usecases.RegisterDeviceUseCase,
	updateUC *usecases.UpdateDeviceUseCase,
	getUC *usecases.GetDeviceUseCase,
	listUC *usecases.ListDevicesUseCase,
	labelUC *usecases.GenerateLabelUseCase,
	log logger.Interface,
) *DeviceHandler {
	return &DeviceHandler{
		registerUseCase: registerUC,
		updateUseCase:   updateUC,
		getUseCase:      getUC,
		listUseCase:     listUC,
		labelUseCase:    labelUC,
		logger:          log,
	}
}

type RegisterDeviceRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
	Model        string `json:"model"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
}

type UpdateDeviceRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Model    string `json:"model"`
	Status   string `json:"status"`
}

func (h *DeviceHandler) Register(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register device request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterDeviceCommand{
		Name:         req.Name,
		Category:     req.Category,
		SerialNumber: req.SerialNumber,
		Model:        req.Model,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Device registered")
}

func (h *DeviceHandler) Update(c *gin.Context) {
	deviceID, err := utils.ParseIDParam(c, "id", "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateDeviceCommand{
		DeviceID: deviceID,
		Name:     req.Name,
		Category: req.Category,
		Model:    req.Model,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device updated", result)
}

func (h *DeviceHandler) Get(c *gin.Context) {
	deviceID, err := utils.ParseIDParam(c, "id", "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetDeviceQuery{DeviceID: deviceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DeviceHandler) List(c *gin.Context) {
	query := usecases.ListDevicesQuery{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}
	if id, ok := queryUint(c, "restaurant_id"); ok {
		query.RestaurantID = &id
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Devices, result.Total, result.Page, result.PageSize)
}

// Label streams the QR label PNG for printing.
func (h *DeviceHandler) Label(c *gin.Context) {
	deviceID, err := utils.ParseIDParam(c, "id", "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.labelUseCase.Execute(c.Request.Context(), usecases.GenerateLabelCommand{
		DeviceID: deviceID,
		Size:     queryInt(c, "size", 256),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=device-%d.png", result.DeviceID))
	c.Data(http.StatusOK, "image/png", result.PNG)
}
