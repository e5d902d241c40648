package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/models"
	"fintrack/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{
		Error:   "error",
		Message: message,
	})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors are storage failures: logged by the caller, generic here.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusBadRequest, service.ErrEmailTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrUserNotFound):
		respondError(w, http.StatusNotFound, service.ErrUserNotFound.Error())
	case errors.Is(err, service.ErrEntryNotFound):
		respondError(w, http.StatusNotFound, service.ErrEntryNotFound.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
