package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/inventory/usecases"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// InventoryHandler manages the spare-part warehouse.
type InventoryHandler struct {
	createUseCase *usecases.CreateItemUseCase
	updateUseCase *usecases.UpdateItemUseCase
	getUseCase    *usecases.GetItemUseCase
	listUseCase   *usecases.ListItemsUseCase
	adjustUseCase *usecases.AdjustStockUseCase
	logger        logger.Interface
}

func NewInventoryHandler(
	createUC *usecases.CreateItemUseCase,
	updateUC *usecases.UpdateItemUseCase,
	getUC *usecases.GetItemUseCase,
	listUC *usecases.ListItemsUseCase,
	adjustUC *usecases.AdjustStockUseCase,
	log logger.Interface,
) *InventoryHandler {
	return &InventoryHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		adjustUseCase: adjustUC,
		logger:        log,
	}
}

type CreateItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	SKU      string  `json:"sku" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Stock    int     `json:"stock" binding:"min=0"`
	MinStock int     `json:"min_stock" binding:"min=0"`
	MaxStock int     `json:"max_stock" binding:"min=0"`
	Location string  `json:"location"`
	Supplier string  `json:"supplier"`
	UnitCost float64 `json:"unit_cost" binding:"min=0"`
}

type UpdateItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	Supplier string  `json:"supplier"`
	MinStock int     `json:"min_stock" binding:"min=0"`
	MaxStock int     `json:"max_stock" binding:"min=0"`
	UnitCost float64 `json:"unit_cost" binding:"min=0"`
}

type AdjustStockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create item request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateItemCommand{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Stock:    req.Stock,
		MinStock: req.MinStock,
		MaxStock: req.MaxStock,
		Location: req.Location,
		Supplier: req.Supplier,
		UnitCost: req.UnitCost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inventory item created")
}

func (h *InventoryHandler) Update(c *gin.Context) {
	itemID, err := utils.ParseIDParam(c, "id", "inventory item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateItemCommand{
		ItemID:   itemID,
		Name:     req.Name,
		Category: req.Category,
		Location: req.Location,
		Supplier: req.Supplier,
		MinStock: req.MinStock,
		MaxStock: req.MaxStock,
		UnitCost: req.UnitCost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inventory item updated", result)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	itemID, err := utils.ParseIDParam(c, "id", "inventory item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetItemQuery{ItemID: itemID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *InventoryHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListItemsQuery{
		Category:     c.Query("category"),
		BelowMinimum: c.Query("below_minimum") == "true",
		Search:       c.Query("search"),
		Page:         queryInt(c, "page", 1),
		PageSize:     queryInt(c, "page_size", 20),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// AdjustStock applies a manual warehouse correction. Positive quantities
// restock, negative quantities remove stock.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	itemID, err := utils.ParseIDParam(c, "id", "inventory item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.adjustUseCase.Execute(c.Request.Context(), usecases.AdjustStockCommand{
		ItemID:     itemID,
		Quantity:   req.Quantity,
		AdjustedBy: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stock adjusted", result)
}
