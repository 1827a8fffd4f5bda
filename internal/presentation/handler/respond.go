package handler

import "memoria/internal/domain/dto"

// internalError is the generic 500 body; internal detail never reaches
// the caller.
func internalError() dto.ErrorResponse {
	return dto.NewErrorResponse("An unexpected error occurred while processing your request.")
}
