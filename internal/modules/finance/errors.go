package finance

import "rentalhub/internal/pkg/apperr"

var (
	ErrRentalNotFound  = apperr.NotFound("rental not found")
	ErrPaymentNotFound = apperr.NotFound("payment not found")
	ErrExpenseNotFound = apperr.NotFound("expense not found")
	ErrInvalidAmount   = apperr.InvalidInput("amount must be greater than 0")
	ErrOverpayment     = apperr.Conflict("payment exceeds the amount due")
	ErrInvalidMethod   = apperr.InvalidInput("method must be one of: CASH CARD BANK_TRANSFER MOBILE OTHER")
	ErrInvalidCategory = apperr.InvalidInput("category must be one of: MAINTENANCE SUPPLIES UTILITIES SALARIES RENT MARKETING OTHER")
	ErrInvalidPeriod   = apperr.InvalidInput("endDate must not be before startDate")
)
