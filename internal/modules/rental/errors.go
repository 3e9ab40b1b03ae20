package rental

import "rentalhub/internal/pkg/apperr"

var (
	ErrRentalNotFound   = apperr.NotFound("rental not found")
	ErrCustomerNotFound = apperr.NotFound("customer not found")
	ErrItemNotFound     = apperr.NotFound("item not found")
	ErrItemUnavailable  = apperr.Conflict("item is not available for rental")
	ErrInvalidPeriod    = apperr.InvalidInput("endDate must be after startDate")
	ErrNegativeTotal    = apperr.InvalidInput("discount cannot exceed subtotal plus deposit")
	ErrAlreadyReturned  = apperr.Conflict("rental has already been returned")
	ErrRentalClosed     = apperr.Conflict("rental is completed or cancelled and can no longer change")
	ErrInvalidStatus    = apperr.InvalidInput("status must be one of: PENDING ACTIVE COMPLETED OVERDUE CANCELLED")
)

func errTransition(from, to string) error {
	return apperr.Conflict("cannot change rental status from " + from + " to " + to)
}
