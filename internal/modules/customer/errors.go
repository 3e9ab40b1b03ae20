package customer

import "rentalhub/internal/pkg/apperr"

var (
	ErrCustomerNotFound       = apperr.NotFound("customer not found")
	ErrCustomerExists         = apperr.Conflict("a customer with this email or id number already exists")
	ErrCustomerHasOpenRentals = apperr.Conflict("customer has pending or active rentals")
)
