package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/quizboard-server/internal/model"
)

// messageResponse is the body of every non-entity response.
type messageResponse struct {
	Message string `json:"message"`
}

// handleError maps a service error to a status code and a client-safe message.
func handleError(err error) (int, messageResponse) {
	var fieldErr *model.FieldError

	switch {
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest, messageResponse{Message: fieldErr.Error()}
	case errors.Is(err, model.ErrInvalidSubmission), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, messageResponse{Message: "invalid input"}
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, messageResponse{Message: "resource not found"}
	default:
		return http.StatusInternalServerError, messageResponse{Message: "internal server error"}
	}
}
