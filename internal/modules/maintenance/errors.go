package maintenance

import "rentalhub/internal/pkg/apperr"

var (
	ErrMaintenanceNotFound = apperr.NotFound("maintenance record not found")
	ErrItemNotFound        = apperr.NotFound("item not found")
	ErrAlreadyCompleted    = apperr.Conflict("maintenance is already completed")
	ErrCreateCompleted     = apperr.InvalidInput("a new maintenance record cannot start as COMPLETED")
	ErrInvalidStatus       = apperr.InvalidInput("status must be one of: PENDING IN_PROGRESS COMPLETED")
)
