package rental

import (
	"github.com/shopspring/decimal"

	"rentalhub/internal/domain"
)

type CreateRentalRequest struct {
	CustomerID int64           `json:"customerId" binding:"required,gt=0"`
	ItemID     int64           `json:"itemId" binding:"required,gt=0"`
	StartDate  *domain.Date    `json:"startDate" binding:"required"`
	EndDate    *domain.Date    `json:"endDate" binding:"required"`
	Deposit    decimal.Decimal `json:"deposit" binding:"gte=0"`
	Discount   decimal.Decimal `json:"discount" binding:"gte=0"`
	Notes      string          `json:"notes"`
}

type UpdateRentalRequest struct {
	StartDate *domain.Date         `json:"startDate"`
	EndDate   *domain.Date         `json:"endDate"`
	Status    *domain.RentalStatus `json:"status" binding:"omitempty,oneof=PENDING ACTIVE COMPLETED OVERDUE CANCELLED"`
	Notes     *string              `json:"notes"`
}

func (r UpdateRentalRequest) empty() bool {
	return r.StartDate == nil && r.EndDate == nil && r.Status == nil && r.Notes == nil
}

type RentalQuery struct {
	Status     domain.RentalStatus
	CustomerID int64
	ItemID     int64
}
