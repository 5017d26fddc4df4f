package interfaces

import (
	"log"
	"net/http"

	"github.com/fintrack/FinanceTracker/internal/finance/application"
)

type StatsServiceInterface interface {
	GetUserFinanceStats(userID int64) (application.FinanceStats, error)
}

type StatsHandler struct {
	service      StatsServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewStatsHandler(
	service StatsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *StatsHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &StatsHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *StatsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	stats, err := h.service.GetUserFinanceStats(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve user stats")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newStatsDTO(stats),
	})
}
