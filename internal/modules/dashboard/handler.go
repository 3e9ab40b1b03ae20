package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/access"
	"rentalhub/internal/middleware"
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
	dash := rg.Group("/dashboard")
	{
		dash.GET("/staff", middleware.RequirePermission(access.DashboardStaff), h.Staff)
		dash.GET("/admin", middleware.RequirePermission(access.DashboardAdmin), h.Admin)
	}
}

func (h *Handler) staffResponse(c *gin.Context) (*StaffResponse, bool) {
	o, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return nil, false
	}
	p := view.For(middleware.CurrentRole(c))
	return &StaffResponse{
		Items:         o.Items,
		Rentals:       o.Rentals,
		Customers:     o.Customers,
		RecentRentals: p.Rentals(o.RecentRentals),
		DueSoon:       p.Rentals(o.DueSoon),
	}, true
}

// Staff is open to both roles; rentals inside are rendered for the caller.
func (h *Handler) Staff(c *gin.Context) {
	resp, ok := h.staffResponse(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Admin(c *gin.Context) {
	base, ok := h.staffResponse(c)
	if !ok {
		return
	}
	fin, err := h.service.Financials(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, AdminResponse{
		StaffResponse:       *base,
		MonthToDate:         fin.MonthToDate,
		TotalRevenue:        fin.TotalRevenue,
		OutstandingPayments: fin.OutstandingPayments,
		RecentPayments:      fin.RecentPayments,
	})
}
