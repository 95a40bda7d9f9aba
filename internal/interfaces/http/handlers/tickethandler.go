package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/ticket/usecases"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// TicketHandler exposes the ticket lifecycle over HTTP.
type TicketHandler struct {
	createUseCase         usecases.CreateTicketExecutor
	createHelpdeskUseCase usecases.CreateHelpdeskTicketExecutor
	getUseCase            usecases.GetTicketExecutor
	listUseCase           usecases.ListTicketsExecutor
	assignUseCase         usecases.AssignTicketExecutor
	changeStatusUseCase   usecases.ChangeStatusExecutor
	resolveUseCase        usecases.ResolveTicketExecutor
	closeUseCase          usecases.CloseTicketExecutor
	addCommentUseCase     usecases.AddCommentExecutor
	attachPhotoUseCase    usecases.AttachPhotoExecutor
	workOrderUseCase      *usecases.GenerateWorkOrderUseCase
	verifyUseCase         *usecases.VerifyWritePathUseCase
	logger                logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	createHelpdeskUC usecases.CreateHelpdeskTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	assignUC usecases.AssignTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	resolveUC usecases.ResolveTicketExecutor,
	closeUC usecases.CloseTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	attachPhotoUC usecases.AttachPhotoExecutor,
	workOrderUC *usecases.GenerateWorkOrderUseCase,
	verifyUC *usecases.VerifyWritePathUseCase,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase:         createUC,
		createHelpdeskUseCase: createHelpdeskUC,
		getUseCase:            getUC,
		listUseCase:           listUC,
		assignUseCase:         assignUC,
		changeStatusUseCase:   changeStatusUC,
		resolveUseCase:        resolveUC,
		closeUseCase:          closeUC,
		addCommentUseCase:     addCommentUC,
		attachPhotoUseCase:    attachPhotoUC,
		workOrderUseCase:      workOrderUC,
		verifyUseCase:         verifyUC,
		logger:                log,
	}
}

type CreateTicketRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Priority     string   `json:"priority" binding:"required,oneof=low medium high critical"`
	DeviceID     uint     `json:"device_id"`
	RestaurantID uint     `json:"restaurant_id" binding:"required"`
	Photos       []string `json:"photos"`
}

type CreateHelpdeskTicketRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Priority     string `json:"priority" binding:"required,oneof=low medium high critical"`
	DeviceID     uint   `json:"device_id"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,ticketstatus"`
	Notes  string `json:"notes"`
}

type ResolveTicketRequest struct {
	Resolution    string             `json:"resolution" binding:"required"`
	WorkPerformed string             `json:"work_performed" binding:"required"`
	RootCause     string             `json:"root_cause"`
	MinutesSpent  int                `json:"minutes_spent" binding:"required,min=1"`
	Parts         []PartUsageRequest `json:"parts"`
}

type PartUsageRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CloseTicketRequest struct {
	Notes string `json:"notes"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type AttachPhotoRequest struct {
	PhotoRef string `json:"photo_ref" binding:"required"`
}

type VerifyWritePathRequest struct {
	DeviceID     uint `json:"device_id" binding:"required"`
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		DeviceID:     req.DeviceID,
		RestaurantID: req.RestaurantID,
		CreatorID:    userID,
		Photos:       req.Photos,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// CreateHelpdesk is the software-support intake path.
func (h *TicketHandler) CreateHelpdesk(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateHelpdeskTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid helpdesk ticket request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createHelpdeskUseCase.Execute(c.Request.Context(), usecases.CreateHelpdeskTicketCommand{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		DeviceID:     req.DeviceID,
		RestaurantID: req.RestaurantID,
		CreatorID:    userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Helpdesk ticket created successfully")
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   userID,
		Role:     authorization.RoleFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) List(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	query := usecases.ListTicketsQuery{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "page_size", 20),
		UserID:    userID,
		Role:      authorization.RoleFromContext(c),
	}
	if id, ok := queryUint(c, "device_id"); ok {
		query.DeviceID = &id
	}
	if id, ok := queryUint(c, "restaurant_id"); ok {
		query.RestaurantID = &id
	}
	if id, ok := queryUint(c, "assignee_id"); ok {
		query.AssigneeID = &id
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) Assign(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.assignUseCase.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:     ticketID,
		AssigneeID:   req.AssigneeID,
		AssignedBy:   userID,
		AssignerRole: authorization.RoleFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned", result)
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.changeStatusUseCase.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		Notes:     req.Notes,
		ChangedBy: userID,
		Role:      authorization.RoleFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

func (h *TicketHandler) Resolve(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid resolve request", "error", err, "ticket_id", ticketID)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	parts := make([]usecases.PartUsage, 0, len(req.Parts))
	for _, p := range req.Parts {
		parts = append(parts, usecases.PartUsage{ItemID: p.ItemID, Quantity: p.Quantity})
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.resolveUseCase.Execute(c.Request.Context(), usecases.ResolveTicketCommand{
		TicketID:      ticketID,
		Resolution:    req.Resolution,
		WorkPerformed: req.WorkPerformed,
		RootCause:     req.RootCause,
		MinutesSpent:  req.MinutesSpent,
		Parts:         parts,
		ResolvedBy:    userID,
		Role:          authorization.RoleFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved", result)
}

func (h *TicketHandler) Close(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.closeUseCase.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
		Notes:    req.Notes,
		ClosedBy: userID,
		Role:     authorization.RoleFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.addCommentUseCase.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		UserID:   userID,
		Role:     authorization.RoleFromContext(c),
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added")
}

func (h *TicketHandler) AttachPhoto(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttachPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.attachPhotoUseCase.Execute(c.Request.Context(), usecases.AttachPhotoCommand{
		TicketID: ticketID,
		UserID:   userID,
		Role:     authorization.RoleFromContext(c),
		PhotoRef: req.PhotoRef,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo attached", result)
}

// WorkOrder streams the rendered work-order PDF for a resolved ticket.
func (h *TicketHandler) WorkOrder(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.workOrderUseCase.Execute(c.Request.Context(), usecases.GenerateWorkOrderQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=workorder-%s.pdf", result.Number))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// VerifyWritePath runs the admin write-path diagnostic.
func (h *TicketHandler) VerifyWritePath(c *gin.Context) {
	var req VerifyWritePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.verifyUseCase.Execute(c.Request.Context(), usecases.VerifyWritePathCommand{
		RequestedBy:  userID,
		Role:         authorization.RoleFromContext(c),
		DeviceID:     req.DeviceID,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Write path verified", result)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
