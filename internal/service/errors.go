package service

import "errors"

// Sentinel errors shared across services. Handlers translate these to
// HTTP responses with errors.Is.
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDisabled       = errors.New("account disabled")
	ErrNotFound           = errors.New("record not found")

	ErrProductNotFound  = errors.New("product not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrInvalidStock     = errors.New("invalid stock")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrCartEmpty         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is not pending")

	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)
