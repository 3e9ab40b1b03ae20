package finance

import (
	"github.com/shopspring/decimal"

	"rentalhub/internal/domain"
)

type RecordPaymentRequest struct {
	RentalID    int64                `json:"rentalId" binding:"required,gt=0"`
	Amount      decimal.Decimal      `json:"amount" binding:"gt=0"`
	Method      domain.PaymentMethod `json:"method" binding:"required,oneof=CASH CARD BANK_TRANSFER MOBILE OTHER"`
	Reference   string               `json:"reference" binding:"max=120"`
	Notes       string               `json:"notes"`
	PaymentDate *domain.Date         `json:"paymentDate"`
}

type CreateExpenseRequest struct {
	Description string                 `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal        `json:"amount" binding:"gt=0"`
	Category    domain.ExpenseCategory `json:"category" binding:"required,oneof=MAINTENANCE SUPPLIES UTILITIES SALARIES RENT MARKETING OTHER"`
	ExpenseDate *domain.Date           `json:"expenseDate"`
	Notes       string                 `json:"notes"`
}

type UpdateExpenseRequest struct {
	Description *string                 `json:"description" binding:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal        `json:"amount" binding:"omitempty,gt=0"`
	Category    *domain.ExpenseCategory `json:"category" binding:"omitempty,oneof=MAINTENANCE SUPPLIES UTILITIES SALARIES RENT MARKETING OTHER"`
	ExpenseDate *domain.Date            `json:"expenseDate"`
	Notes       *string                 `json:"notes"`
}

// DateRange is an optional [StartDate, EndDate] filter. A date-only
// EndDate includes that whole day.
type DateRange struct {
	StartDate *domain.Date
	EndDate   *domain.Date
}

type PaymentQuery struct {
	RentalID int64
	DateRange
}

type ExpenseQuery struct {
	Category domain.ExpenseCategory
	DateRange
}

type Summary struct {
	StartDate           *string         `json:"startDate"`
	EndDate             *string         `json:"endDate"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	OutstandingPayments decimal.Decimal `json:"outstandingPayments"`
	ProfitMargin        decimal.Decimal `json:"profitMargin"`
}

type MonthToDate struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}
