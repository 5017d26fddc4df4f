package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
)

type IncomeServiceInterface interface {
	CreateIncome(income domain.Income) (domain.Income, error)
	UpdateIncome(id int64, income domain.Income) (domain.Income, error)
	GetIncomeByID(id int64) (domain.Income, error)
	GetAllIncome() ([]domain.Income, error)
	DeleteIncome(id int64) error
	GetAllIncomeByUser(userID int64) ([]domain.Income, error)
	GetTotalIncomeByUser(userID int64) (float64, error)
}

type IncomeHandler struct {
	service      IncomeServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewIncomeHandler(
	service IncomeServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *IncomeHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &IncomeHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *IncomeHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var dto IncomeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	income, err := dto.toIncome()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create income")
		return
	}
	created, err := h.service.CreateIncome(income)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create income")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully created.",
		"data":    newIncomeDTO(created),
	})
}

func (h *IncomeHandler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income ID")
		return
	}
	var dto IncomeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	income, err := dto.toIncome()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update income")
		return
	}
	updated, err := h.service.UpdateIncome(id, income)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update income")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully updated.",
		"data":    newIncomeDTO(updated),
	})
}

func (h *IncomeHandler) GetIncomeByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income ID")
		return
	}
	income, err := h.service.GetIncomeByID(id)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve income")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newIncomeDTO(income),
	})
}

func (h *IncomeHandler) GetAllIncome(w http.ResponseWriter, r *http.Request) {
	incomes, err := h.service.GetAllIncome()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve income")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newIncomeDTOs(incomes),
	})
}

func (h *IncomeHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income ID")
		return
	}
	if err := h.service.DeleteIncome(id); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete income")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully deleted.",
	})
}

func (h *IncomeHandler) GetAllIncomeByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	incomes, err := h.service.GetAllIncomeByUser(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve income")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newIncomeDTOs(incomes),
	})
}

func (h *IncomeHandler) GetTotalIncomeByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	total, err := h.service.GetTotalIncomeByUser(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve total income")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   total,
	})
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
