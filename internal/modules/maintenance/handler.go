package maintenance

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/domain"
	"rentalhub/internal/middleware"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/pkg/request"
	"rentalhub/internal/pkg/response"
	"rentalhub/internal/pkg/validator"
	"rentalhub/internal/view"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	records := rg.Group("/maintenance")
	{
		records.GET("", h.List)
		records.GET("/:id", h.Get)
		records.POST("", h.Create)
		records.PUT("/:id", h.Update)
		records.PUT("/:id/complete", h.Complete)
		records.DELETE("/:id", h.Delete)
	}
}

func presenter(c *gin.Context) view.Presenter {
	return view.For(middleware.CurrentRole(c))
}

func (h *Handler) List(c *gin.Context) {
	itemID, ok := request.QueryID(c, "itemId")
	if !ok {
		return
	}
	q := MaintenanceQuery{Status: domain.MaintenanceStatus(c.Query("status")), ItemID: itemID}
	page, err := h.service.List(c.Request.Context(), q, pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, pagination.Map(page, presenter(c).Maintenance))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, presenter(c).Maintenance(*m))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMaintenanceRequest
	if !request.BindJSON(c, &req) {
		return
	}
	m, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), middleware.CurrentRole(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter(c).Maintenance(*m))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req UpdateMaintenanceRequest
	if !request.BindJSON(c, &req) {
		return
	}
	m, err := h.service.Update(c.Request.Context(), id, middleware.CurrentRole(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, presenter(c).Maintenance(*m))
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req CompleteMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, validator.Describe(err))
		return
	}
	m, err := h.service.Complete(c.Request.Context(), id, middleware.CurrentRole(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, presenter(c).Maintenance(*m))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "maintenance record deleted"})
}
