package common

// APIResponse is the wrapper used by the service endpoints (health, version)
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error body returned by the public form endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a success body carrying a human readable message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a new success response with a simple message
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message, details string) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: details,
	}
}
