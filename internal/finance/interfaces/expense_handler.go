package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
)

type ExpenseServiceInterface interface {
	CreateExpense(expense domain.Expense) (domain.Expense, error)
	UpdateExpense(id int64, expense domain.Expense) (domain.Expense, error)
	GetExpenseByID(id int64) (domain.Expense, error)
	GetAllExpenses() ([]domain.Expense, error)
	DeleteExpense(id int64) error
	GetAllExpensesByUser(userID int64) ([]domain.Expense, error)
	GetTotalExpenseByUser(userID int64) (float64, error)
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ExpenseHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	expense, err := dto.toExpense()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create expense")
		return
	}
	created, err := h.service.CreateExpense(expense)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create expense")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully created.",
		"data":    newExpenseDTO(created),
	})
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}
	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	expense, err := dto.toExpense()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update expense")
		return
	}
	updated, err := h.service.UpdateExpense(id, expense)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update expense")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully updated.",
		"data":    newExpenseDTO(updated),
	})
}

func (h *ExpenseHandler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}
	expense, err := h.service.GetExpenseByID(id)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve expense")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newExpenseDTO(expense),
	})
}

func (h *ExpenseHandler) GetAllExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.GetAllExpenses()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve expenses")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newExpenseDTOs(expenses),
	})
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}
	if err := h.service.DeleteExpense(id); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete expense")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully deleted.",
	})
}

func (h *ExpenseHandler) GetAllExpensesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	expenses, err := h.service.GetAllExpensesByUser(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve expenses")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newExpenseDTOs(expenses),
	})
}

func (h *ExpenseHandler) GetTotalExpenseByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	total, err := h.service.GetTotalExpenseByUser(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve total expenses")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   total,
	})
}
