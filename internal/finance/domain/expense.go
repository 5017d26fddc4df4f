package domain

import (
	"database/sql"
	"strings"
	"time"

	"github.com/fintrack/FinanceTracker/internal/finance/errors"
)

type ExpenseRepository interface {
	Save(expense Expense) (Expense, error)
	Update(expense Expense) error
	FindByID(expenseID int64) (*Expense, error)
	ExistsByID(expenseID int64) (bool, error)
	FindAll() ([]Expense, error)
	FindAllByUserID(userID int64) ([]Expense, error)
	SumAmountByUserID(userID int64) (sql.NullFloat64, error)
	Delete(expenseID int64) error
}

type Expense struct {
	ID          int64
	Title       string // optional
	Description string
	Date        time.Time
	Category    string
	Amount      float64
	UserID      int64 // owning user, required
}

// Validate mirrors Income.Validate; the title stays optional, the category
// does not.
func (e *Expense) Validate() error {
	if e.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if e.Date.After(time.Now()) {
		return errors.NewValidationError("Date should not be in the future")
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.NewValidationError("Category is required")
	}
	if e.Amount < 0 {
		return errors.NewValidationError("Amount must be non-negative")
	}
	return nil
}
