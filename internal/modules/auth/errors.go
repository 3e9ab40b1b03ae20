package auth

import "rentalhub/internal/pkg/apperr"

var (
	ErrInvalidCredentials = apperr.Unauthenticated("invalid email or password")
	ErrAccountDisabled    = apperr.Unauthenticated("account is disabled")
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrEmailAlreadyExists = apperr.Conflict("email is already registered")
	ErrDeleteSelf         = apperr.Conflict("you cannot delete your own account")
	ErrDemoteSelf         = apperr.Conflict("you cannot change the role or status of your own account")
)
