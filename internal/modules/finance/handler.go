package finance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/domain"
	"rentalhub/internal/middleware"
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

// RegisterRoutes expects a group gated on finance access.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	finances := rg.Group("/finances")
	{
		finances.GET("/payments", h.ListPayments)
		finances.GET("/payments/:id", h.GetPayment)
		finances.POST("/payments", h.RecordPayment)
		finances.DELETE("/payments/:id", h.DeletePayment)

		finances.GET("/expenses", h.ListExpenses)
		finances.GET("/expenses/:id", h.GetExpense)
		finances.POST("/expenses", h.CreateExpense)
		finances.PUT("/expenses/:id", h.UpdateExpense)
		finances.DELETE("/expenses/:id", h.DeleteExpense)

		finances.GET("/summary", h.Summary)
	}
}

func dateRange(c *gin.Context) (DateRange, bool) {
	start, ok := request.QueryDate(c, "startDate")
	if !ok {
		return DateRange{}, false
	}
	end, ok := request.QueryDate(c, "endDate")
	if !ok {
		return DateRange{}, false
	}
	return DateRange{StartDate: start, EndDate: end}, true
}

/* ---------- PAYMENTS ---------- */

// ListPayments supports ?rentalId=, ?startDate= and ?endDate=.
func (h *Handler) ListPayments(c *gin.Context) {
	rentalID, ok := request.QueryID(c, "rentalId")
	if !ok {
		return
	}
	r, ok := dateRange(c)
	if !ok {
		return
	}
	page, err := h.service.ListPayments(c.Request.Context(), PaymentQuery{RentalID: rentalID, DateRange: r}, pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	p, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if !request.BindJSON(c, &req) {
		return
	}
	p, err := h.service.RecordPayment(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) DeletePayment(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePayment(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "payment deleted"})
}

/* ---------- EXPENSES ---------- */

func (h *Handler) ListExpenses(c *gin.Context) {
	r, ok := dateRange(c)
	if !ok {
		return
	}
	q := ExpenseQuery{Category: domain.ExpenseCategory(c.Query("category")), DateRange: r}
	page, err := h.service.ListExpenses(c.Request.Context(), q, pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetExpense(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	e, err := h.service.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if !request.BindJSON(c, &req) {
		return
	}
	e, err := h.service.CreateExpense(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req UpdateExpenseRequest
	if !request.BindJSON(c, &req) {
		return
	}
	e, err := h.service.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "expense deleted"})
}

/* ---------- SUMMARY ---------- */

func (h *Handler) Summary(c *gin.Context) {
	r, ok := dateRange(c)
	if !ok {
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), r)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
