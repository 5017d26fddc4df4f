package domain

import (
	"database/sql"
	"strings"
	"time"

	"github.com/fintrack/FinanceTracker/internal/finance/errors"
)

type IncomeRepository interface {
	Save(income Income) (Income, error)
	Update(income Income) error
	FindByID(incomeID int64) (*Income, error)
	ExistsByID(incomeID int64) (bool, error)
	FindAll() ([]Income, error)
	FindAllByUserID(userID int64) ([]Income, error)
	SumAmountByUserID(userID int64) (sql.NullFloat64, error)
	Delete(incomeID int64) error
}

type Income struct {
	ID          int64
	Source      string
	Description string
	Date        time.Time
	Amount      float64
	UserID      int64 // owning user, required
}

// Validate checks the field rules shared by create and update. Zero amounts
// are allowed, only negative ones are rejected.
func (i *Income) Validate() error {
	if strings.TrimSpace(i.Source) == "" {
		return errors.NewValidationError("Source is required")
	}
	if i.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if i.Date.After(time.Now()) {
		return errors.NewValidationError("Date should not be in the future")
	}
	if i.Amount < 0 {
		return errors.NewValidationError("Amount must be non-negative")
	}
	return nil
}
