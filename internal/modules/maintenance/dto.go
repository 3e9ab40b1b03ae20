package maintenance

import (
	"github.com/shopspring/decimal"

	"rentalhub/internal/domain"
)

type CreateMaintenanceRequest struct {
	ItemID      int64                     `json:"itemId" binding:"required,gt=0"`
	Description string                    `json:"description" binding:"required"`
	Status      *domain.MaintenanceStatus `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Cost        decimal.Decimal           `json:"cost" binding:"gte=0"`
	PerformedBy string                    `json:"performedBy" binding:"max=120"`
	Notes       string                    `json:"notes"`
	StartDate   *domain.Date              `json:"startDate"`
}

type UpdateMaintenanceRequest struct {
	Description *string                   `json:"description" binding:"omitempty,min=1"`
	Status      *domain.MaintenanceStatus `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Cost        *decimal.Decimal          `json:"cost" binding:"omitempty,gte=0"`
	PerformedBy *string                   `json:"performedBy" binding:"omitempty,max=120"`
	Notes       *string                   `json:"notes"`
}

// CompleteMaintenanceRequest is optional; an empty body completes as is.
type CompleteMaintenanceRequest struct {
	Cost  *decimal.Decimal `json:"cost" binding:"omitempty,gte=0"`
	Notes *string          `json:"notes"`
}

type MaintenanceQuery struct {
	Status domain.MaintenanceStatus
	ItemID int64
}
