package dashboard

import (
	"github.com/shopspring/decimal"

	"rentalhub/internal/domain"
	"rentalhub/internal/modules/finance"
)

// Overview is the operational snapshot shared by both dashboards.
type Overview struct {
	Items         map[string]int64
	Rentals       map[string]int64
	Customers     int64
	RecentRentals []domain.Rental
	DueSoon       []domain.Rental
}

type Financials struct {
	MonthToDate         *finance.MonthToDate
	TotalRevenue        decimal.Decimal
	OutstandingPayments decimal.Decimal
	RecentPayments      []domain.Payment
}

type StaffResponse struct {
	Items         map[string]int64 `json:"items"`
	Rentals       map[string]int64 `json:"rentals"`
	Customers     int64            `json:"customers"`
	RecentRentals []any            `json:"recentRentals"`
	DueSoon       []any            `json:"dueSoon"`
}

type AdminResponse struct {
	StaffResponse
	MonthToDate         *finance.MonthToDate `json:"monthToDate"`
	TotalRevenue        decimal.Decimal      `json:"totalRevenue"`
	OutstandingPayments decimal.Decimal      `json:"outstandingPayments"`
	RecentPayments      []domain.Payment     `json:"recentPayments"`
}
