package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/notification/usecases"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// NotificationHandler exposes the per-user notification inbox.
type NotificationHandler struct {
	service *usecases.NotificationService
	logger  logger.Interface
}

func NewNotificationHandler(service *usecases.NotificationService, log logger.Interface) *NotificationHandler {
	return &NotificationHandler{service: service, logger: log}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.service.List(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:     userID,
		UnreadOnly: c.Query("unread_only") == "true",
		Page:       queryInt(c, "page", 1),
		PageSize:   queryInt(c, "page_size", 20),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, result.Page, result.PageSize)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	if err := h.service.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked read", nil)
}
