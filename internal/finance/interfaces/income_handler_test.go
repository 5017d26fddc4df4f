package interfaces

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newIncomeRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateIncome_Success(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{1: true}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := newIncomeRequest(t, http.MethodPost, "/api/income", IncomeDTO{
		Source: "Salary",
		Date:   "2025-01-01",
		Amount: 3000,
		UserID: 1,
	})
	w := httptest.NewRecorder()

	handler.CreateIncome(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Status string    `json:"status"`
		Data   IncomeDTO `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, int64(1), response.Data.ID)
	assert.Equal(t, "Salary", response.Data.Source)
	assert.Equal(t, "2025-01-01", response.Data.Date)
	assert.Equal(t, int64(1), response.Data.UserID)
}

func TestCreateIncome_InvalidBody(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{1: true}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/income", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()

	handler.CreateIncome(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "Invalid request body", response["message"])
	assert.Equal(t, float64(http.StatusBadRequest), response["code"])
}

func TestCreateIncome_ValidationError(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{1: true}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := newIncomeRequest(t, http.MethodPost, "/api/income", IncomeDTO{
		Source: "Salary",
		Date:   "2025-01-01",
		Amount: -5,
		UserID: 1,
	})
	w := httptest.NewRecorder()

	handler.CreateIncome(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Empty(t, service.Incomes)
}

func TestCreateIncome_MalformedDate(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{1: true}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := newIncomeRequest(t, http.MethodPost, "/api/income", IncomeDTO{
		Source: "Salary",
		Date:   "01/01/2025",
		Amount: 100,
		UserID: 1,
	})
	w := httptest.NewRecorder()

	handler.CreateIncome(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateIncome_UnknownUser(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := newIncomeRequest(t, http.MethodPost, "/api/income", IncomeDTO{
		Source: "Salary",
		Date:   "2025-01-01",
		Amount: 100,
		UserID: 42,
	})
	w := httptest.NewRecorder()

	handler.CreateIncome(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "User with ID 42 not found", response["message"])
}

func TestGetIncomeByID_NotFound(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{1: true}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/income/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	handler.GetIncomeByID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetIncomeByID_InvalidID(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{1: true}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/income/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler.GetIncomeByID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetTotalIncomeByUser_ZeroWithoutRecords(t *testing.T) {
	service := &MockIncomeService{ExistingUsers: map[int64]bool{1: true}}
	handler := NewIncomeHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/income/user/1/total", nil)
	req.SetPathValue("userId", "1")
	w := httptest.NewRecorder()

	handler.GetTotalIncomeByUser(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status string  `json:"status"`
		Data   float64 `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, 0.0, response.Data)
}
