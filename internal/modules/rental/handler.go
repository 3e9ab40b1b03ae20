package rental

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/domain"
	"rentalhub/internal/middleware"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/pkg/request"
	"rentalhub/internal/pkg/response"
	"rentalhub/internal/view"
)

// Handler renders every rental through the caller's presenter, so staff
// responses never carry charge or payment fields.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rentals := rg.Group("/rentals")
	{
		rentals.GET("", h.List)
		rentals.GET("/status/active", h.ListActive)
		rentals.GET("/status/overdue", h.ListOverdue)
		rentals.GET("/:id", h.Get)
		rentals.POST("", h.Create)
		rentals.PUT("/:id", h.Update)
		rentals.PUT("/:id/return", h.Return)
	}
}

func presenter(c *gin.Context) view.Presenter {
	return view.For(middleware.CurrentRole(c))
}

func (h *Handler) renderPage(c *gin.Context, page pagination.Page[domain.Rental]) {
	response.Success(c, http.StatusOK, pagination.Map(page, presenter(c).Rental))
}

// List supports ?status=, ?customerId= and ?itemId=.
func (h *Handler) List(c *gin.Context) {
	customerID, ok := request.QueryID(c, "customerId")
	if !ok {
		return
	}
	itemID, ok := request.QueryID(c, "itemId")
	if !ok {
		return
	}
	q := RentalQuery{
		Status:     domain.RentalStatus(c.Query("status")),
		CustomerID: customerID,
		ItemID:     itemID,
	}
	page, err := h.service.List(c.Request.Context(), q, pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	h.renderPage(c, page)
}

func (h *Handler) ListActive(c *gin.Context) {
	page, err := h.service.ListActive(c.Request.Context(), pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	h.renderPage(c, page)
}

func (h *Handler) ListOverdue(c *gin.Context) {
	page, err := h.service.ListOverdue(c.Request.Context(), pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	h.renderPage(c, page)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	r, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, presenter(c).Rental(*r))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRentalRequest
	if !request.BindJSON(c, &req) {
		return
	}
	r, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter(c).Rental(*r))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req UpdateRentalRequest
	if !request.BindJSON(c, &req) {
		return
	}
	r, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, presenter(c).Rental(*r))
}

func (h *Handler) Return(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	r, err := h.service.Return(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, presenter(c).Rental(*r))
}
