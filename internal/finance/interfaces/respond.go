package interfaces

import (
	"encoding/json"
	"net/http"

	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// respondServiceError translates the core error kinds into transport-level
// errors; anything unrecognized becomes a 500 with the given fallback.
func respondServiceError(respond func(w http.ResponseWriter, status int, message string), w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err):
		respond(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsUserNotFoundError(err), financeErrors.IsResourceNotFoundError(err):
		respond(w, http.StatusNotFound, err.Error())
	default:
		respond(w, http.StatusInternalServerError, fallback)
	}
}
