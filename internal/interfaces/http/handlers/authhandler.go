package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/user/usecases"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// AuthHandler covers authentication and user administration.
type AuthHandler struct {
	registerUseCase   usecases.RegisterUserExecutor
	loginUseCase      usecases.LoginExecutor
	getUseCase        usecases.GetUserExecutor
	listUseCase       usecases.ListUsersExecutor
	changeRoleUseCase usecases.ChangeRoleExecutor
	deactivateUseCase usecases.DeactivateUserExecutor
	logger            logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginExecutor,
	getUC usecases.GetUserExecutor,
	listUC usecases.ListUsersExecutor,
	changeRoleUC usecases.ChangeRoleExecutor,
	deactivateUC usecases.DeactivateUserExecutor,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:   registerUC,
		loginUseCase:      loginUC,
		getUseCase:        getUC,
		listUseCase:       listUC,
		changeRoleUseCase: changeRoleUC,
		deactivateUseCase: deactivateUC,
		logger:            log,
	}
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Role         string `json:"role" binding:"required,oneof=technician software_tech admin manager restaurant_staff warehouse"`
	RestaurantID *uint  `json:"restaurant_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=technician software_tech admin manager restaurant_staff warehouse"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	query := usecases.ListUsersQuery{
		Role:       c.Query("role"),
		ActiveOnly: c.Query("active_only") == "true",
		Search:     c.Query("search"),
		Page:       queryInt(c, "page", 1),
		PageSize:   queryInt(c, "page_size", 20),
	}
	if id, ok := queryUint(c, "restaurant_id"); ok {
		query.RestaurantID = &id
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

func (h *AuthHandler) ChangeRole(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.UserIDFromContext(c)

	result, err := h.changeRoleUseCase.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		UserID:    userID,
		NewRole:   req.Role,
		ChangedBy: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", result)
}

func (h *AuthHandler) Deactivate(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := middleware.UserIDFromContext(c)

	if err := h.deactivateUseCase.Execute(c.Request.Context(), usecases.DeactivateUserCommand{
		UserID:        userID,
		DeactivatedBy: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
