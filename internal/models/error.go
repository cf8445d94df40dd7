package models

import "errors"

// Domain errors returned by the service layer
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrPizzaNotFound      = errors.New("pizza not found")

	ErrRestaurantPizzaNotFound = errors.New("restaurant pizza not found")
)

// Messages exposed in API error bodies
const (
	MsgRestaurantNotFound      = "Restaurant not found"
	MsgPizzaOrRestaurantAbsent = "Pizza or Restaurant not found"
	MsgMissingRequiredFields   = "Missing required fields"
	MsgInvalidRequestBody      = "Invalid request body"
	MsgInternalServerError     = "Internal server error"
)

// ValidationError reports a field value that breaks a model rule
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrorResponse is the single-message error body used by restaurant routes
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the error body used by association routes
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorsResponse wraps one or more messages into an ErrorsResponse
func NewErrorsResponse(messages ...string) ErrorsResponse {
	return ErrorsResponse{Errors: messages}
}
