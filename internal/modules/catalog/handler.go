package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/pkg/request"
	"rentalhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group gated on inventory management.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	items := rg.Group("/items")
	{
		items.GET("", h.ListItems)
		items.GET("/:id", h.GetItem)
		items.POST("", h.CreateItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}

func (h *Handler) ListCategories(c *gin.Context) {
	page, err := h.service.ListCategories(c.Request.Context(), pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	cat, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if !request.BindJSON(c, &req) {
		return
	}
	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if !request.BindJSON(c, &req) {
		return
	}
	cat, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "category deleted"})
}

// ListItems supports ?status=, ?categoryId= and ?search= (name or sku).
// Items go out whole to both roles: dailyRate is the public price list, not
// a rental financial, so only rental and maintenance payloads are redacted.
func (h *Handler) ListItems(c *gin.Context) {
	categoryID, ok := request.QueryID(c, "categoryId")
	if !ok {
		return
	}
	q := ItemQuery{
		Status:     domain.ItemStatus(c.Query("status")),
		CategoryID: categoryID,
		Search:     c.Query("search"),
	}
	page, err := h.service.ListItems(c.Request.Context(), q, pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetItem(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if !request.BindJSON(c, &req) {
		return
	}
	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req UpdateItemRequest
	if !request.BindJSON(c, &req) {
		return
	}
	item, err := h.service.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "item deleted"})
}
