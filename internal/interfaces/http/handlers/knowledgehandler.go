package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/knowledge/usecases"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// KnowledgeHandler serves the repair knowledge base.
type KnowledgeHandler struct {
	service *usecases.ArticleService
	logger  logger.Interface
}

func NewKnowledgeHandler(service *usecases.ArticleService, log logger.Interface) *KnowledgeHandler {
	return &KnowledgeHandler{service: service, logger: log}
}

type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required"`
	Body     string   `json:"body" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (h *KnowledgeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create article request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), usecases.CreateArticleCommand{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
		AuthorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created")
}

func (h *KnowledgeHandler) Update(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), usecases.UpdateArticleCommand{
		ArticleID: articleID,
		Title:     req.Title,
		Body:      req.Body,
		Category:  req.Category,
		Tags:      req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated", result)
}

// GetBySlug returns the article with its body rendered to sanitized HTML
// and counts the view.
func (h *KnowledgeHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *KnowledgeHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), usecases.ListArticlesQuery{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, result.Page, result.PageSize)
}

func (h *KnowledgeHandler) Delete(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), articleID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
