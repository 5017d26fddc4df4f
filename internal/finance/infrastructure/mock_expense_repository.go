package infrastructure

import (
	"database/sql"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
)

// MockExpenseRepository is an in-memory stand-in used by the service tests.
type MockExpenseRepository struct {
	Expenses           []domain.Expense
	FindAllByUserCalls int
	nextID             int64
}

func (m *MockExpenseRepository) Save(expense domain.Expense) (domain.Expense, error) {
	m.nextID++
	expense.ID = m.nextID
	m.Expenses = append(m.Expenses, expense)
	return expense, nil
}

func (m *MockExpenseRepository) Update(expense domain.Expense) error {
	for i := range m.Expenses {
		if m.Expenses[i].ID == expense.ID {
			m.Expenses[i] = expense
			return nil
		}
	}
	return nil
}

func (m *MockExpenseRepository) FindByID(expenseID int64) (*domain.Expense, error) {
	for _, expense := range m.Expenses {
		if expense.ID == expenseID {
			found := expense
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockExpenseRepository) ExistsByID(expenseID int64) (bool, error) {
	expense, _ := m.FindByID(expenseID)
	return expense != nil, nil
}

func (m *MockExpenseRepository) FindAll() ([]domain.Expense, error) {
	return append([]domain.Expense(nil), m.Expenses...), nil
}

func (m *MockExpenseRepository) FindAllByUserID(userID int64) ([]domain.Expense, error) {
	m.FindAllByUserCalls++
	var expenses []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) SumAmountByUserID(userID int64) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			total.Valid = true
			total.Float64 += expense.Amount
		}
	}
	return total, nil
}

func (m *MockExpenseRepository) Delete(expenseID int64) error {
	for i, expense := range m.Expenses {
		if expense.ID == expenseID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return nil
}
