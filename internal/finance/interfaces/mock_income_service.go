package interfaces

import (
	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

// MockIncomeService backs the handler tests with a slice and a fixed set of
// known users, running the same validation the real service does.
type MockIncomeService struct {
	Incomes       []domain.Income
	ExistingUsers map[int64]bool
	nextID        int64
}

func (m *MockIncomeService) CreateIncome(income domain.Income) (domain.Income, error) {
	if err := income.Validate(); err != nil {
		return domain.Income{}, err
	}
	if !m.ExistingUsers[income.UserID] {
		return domain.Income{}, financeErrors.NewUserNotFoundError(income.UserID)
	}
	m.nextID++
	income.ID = m.nextID
	m.Incomes = append(m.Incomes, income)
	return income, nil
}

func (m *MockIncomeService) UpdateIncome(id int64, income domain.Income) (domain.Income, error) {
	for i := range m.Incomes {
		if m.Incomes[i].ID == id {
			if err := income.Validate(); err != nil {
				return domain.Income{}, err
			}
			if !m.ExistingUsers[income.UserID] {
				return domain.Income{}, financeErrors.NewUserNotFoundError(income.UserID)
			}
			income.ID = id
			m.Incomes[i] = income
			return income, nil
		}
	}
	return domain.Income{}, financeErrors.NewResourceNotFoundError(id)
}

func (m *MockIncomeService) GetIncomeByID(id int64) (domain.Income, error) {
	for _, income := range m.Incomes {
		if income.ID == id {
			return income, nil
		}
	}
	return domain.Income{}, financeErrors.NewResourceNotFoundError(id)
}

func (m *MockIncomeService) GetAllIncome() ([]domain.Income, error) {
	return m.Incomes, nil
}

func (m *MockIncomeService) DeleteIncome(id int64) error {
	for i, income := range m.Incomes {
		if income.ID == id {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewResourceNotFoundError(id)
}

func (m *MockIncomeService) GetAllIncomeByUser(userID int64) ([]domain.Income, error) {
	if !m.ExistingUsers[userID] {
		return nil, financeErrors.NewUserNotFoundError(userID)
	}
	var incomes []domain.Income
	for _, income := range m.Incomes {
		if income.UserID == userID {
			incomes = append(incomes, income)
		}
	}
	return incomes, nil
}

func (m *MockIncomeService) GetTotalIncomeByUser(userID int64) (float64, error) {
	if !m.ExistingUsers[userID] {
		return 0, financeErrors.NewUserNotFoundError(userID)
	}
	var total float64
	for _, income := range m.Incomes {
		if income.UserID == userID {
			total += income.Amount
		}
	}
	return total, nil
}
