package models

import "errors"

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Resource-specific errors
	ErrRestaurantNotFound      = "RESTAURANT_NOT_FOUND"
	ErrPizzaNotFound           = "PIZZA_NOT_FOUND"
	ErrRestaurantPizzaNotFound = "RESTAURANT_PIZZA_NOT_FOUND"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// ValidationError is returned when a field value is rejected before it is persisted
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrInvalidPrice is returned for a RestaurantPizza price outside [MinPrice, MaxPrice]
var ErrInvalidPrice = &ValidationError{
	Field:   "price",
	Message: "Price must be between 1 and 30",
}

// Restaurant field errors
var (
	ErrRestaurantNameRequired = &ValidationError{
		Field:   "name",
		Message: "Restaurant name must not be empty",
	}
	ErrRestaurantAddressRequired = &ValidationError{
		Field:   "address",
		Message: "Restaurant address must not be empty",
	}
)

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
