package interfaces

import (
	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

type MockExpenseService struct {
	Expenses      []domain.Expense
	ExistingUsers map[int64]bool
	nextID        int64
}

func (m *MockExpenseService) CreateExpense(expense domain.Expense) (domain.Expense, error) {
	if err := expense.Validate(); err != nil {
		return domain.Expense{}, err
	}
	if !m.ExistingUsers[expense.UserID] {
		return domain.Expense{}, financeErrors.NewUserNotFoundError(expense.UserID)
	}
	m.nextID++
	expense.ID = m.nextID
	m.Expenses = append(m.Expenses, expense)
	return expense, nil
}

func (m *MockExpenseService) UpdateExpense(id int64, expense domain.Expense) (domain.Expense, error) {
	for i := range m.Expenses {
		if m.Expenses[i].ID == id {
			if err := expense.Validate(); err != nil {
				return domain.Expense{}, err
			}
			if !m.ExistingUsers[expense.UserID] {
				return domain.Expense{}, financeErrors.NewUserNotFoundError(expense.UserID)
			}
			expense.ID = id
			m.Expenses[i] = expense
			return expense, nil
		}
	}
	return domain.Expense{}, financeErrors.NewResourceNotFoundError(id)
}

func (m *MockExpenseService) GetExpenseByID(id int64) (domain.Expense, error) {
	for _, expense := range m.Expenses {
		if expense.ID == id {
			return expense, nil
		}
	}
	return domain.Expense{}, financeErrors.NewResourceNotFoundError(id)
}

func (m *MockExpenseService) GetAllExpenses() ([]domain.Expense, error) {
	return m.Expenses, nil
}

func (m *MockExpenseService) DeleteExpense(id int64) error {
	for i, expense := range m.Expenses {
		if expense.ID == id {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewResourceNotFoundError(id)
}

func (m *MockExpenseService) GetAllExpensesByUser(userID int64) ([]domain.Expense, error) {
	if !m.ExistingUsers[userID] {
		return nil, financeErrors.NewUserNotFoundError(userID)
	}
	var expenses []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (m *MockExpenseService) GetTotalExpenseByUser(userID int64) (float64, error) {
	if !m.ExistingUsers[userID] {
		return 0, financeErrors.NewUserNotFoundError(userID)
	}
	var total float64
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			total += expense.Amount
		}
	}
	return total, nil
}
