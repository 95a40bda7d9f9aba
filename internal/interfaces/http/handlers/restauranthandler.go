package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/restaurant/usecases"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// RestaurantHandler manages restaurant sites.
type RestaurantHandler struct {
	service *usecases.RestaurantService
	logger  logger.Interface
}

func NewRestaurantHandler(service *usecases.RestaurantService, log logger.Interface) *RestaurantHandler {
	return &RestaurantHandler{service: service, logger: log}
}

type CreateRestaurantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
}

type UpdateRestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), usecases.CreateRestaurantCommand{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Restaurant created")
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	restaurantID, err := utils.ParseIDParam(c, "id", "restaurant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), usecases.UpdateRestaurantCommand{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant updated", result)
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	restaurantID, err := utils.ParseIDParam(c, "id", "restaurant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), restaurantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *RestaurantHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), usecases.ListRestaurantsQuery{
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Restaurants, result.Total, result.Page, result.PageSize)
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	restaurantID, err := utils.ParseIDParam(c, "id", "restaurant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), restaurantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
