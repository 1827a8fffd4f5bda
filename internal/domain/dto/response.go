package dto

// ErrorResponse is the failure envelope shared by every endpoint.
// Internal error detail never appears here.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

func NewValidationErrorResponse(details map[string]string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   "Invalid input data",
		Details: details,
	}
}

// MessageResponse is the minimal success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
