package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/middleware"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/pkg/request"
	"rentalhub/internal/pkg/response"
	"rentalhub/internal/view"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.POST("", h.Create)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), c.Query("search"), pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Get embeds the customer's rentals, rendered for the caller's role.
func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	cust, rentals, err := h.service.GetWithRentals(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view.For(middleware.CurrentRole(c)).Customer(*cust, rentals))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if !request.BindJSON(c, &req) {
		return
	}
	cust, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cust)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req UpdateCustomerRequest
	if !request.BindJSON(c, &req) {
		return
	}
	cust, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cust)
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
	response.Success(c, http.StatusOK, gin.H{"message": "customer deleted"})
}
