package catalog

import "rentalhub/internal/pkg/apperr"

var (
	ErrCategoryNotFound   = apperr.NotFound("category not found")
	ErrCategoryExists     = apperr.Conflict("a category with this name already exists")
	ErrCategoryHasItems   = apperr.Conflict("category still has items")
	ErrItemNotFound       = apperr.NotFound("item not found")
	ErrSKUExists          = apperr.Conflict("an item with this sku already exists")
	ErrItemHasOpenRentals = apperr.Conflict("item has pending or active rentals")
	ErrInvalidItemStatus  = apperr.InvalidInput("status must be one of: AVAILABLE RENTED MAINTENANCE RETIRED")
)
