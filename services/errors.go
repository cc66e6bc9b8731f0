package services

import "errors"

// Domain failures carry a human-readable message and nothing else. Handlers
// map them to HTTP status codes at the boundary.
var (
	ErrUserNotFound       = errors.New("User not found")
	ErrMenuItemNotFound   = errors.New("Menu item not found")
	ErrRestaurantNotFound = errors.New("Restaurant not found")
	ErrAddressNotFound    = errors.New("Address not found")
	ErrCartItemNotFound   = errors.New("Cart item not found")
	ErrOrderNotFound      = errors.New("Order not found")
	ErrCartEmpty          = errors.New("Cart is empty")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrEmailTaken         = errors.New("Email already in use")
	ErrWrongPassword      = errors.New("Current password is incorrect")
)
