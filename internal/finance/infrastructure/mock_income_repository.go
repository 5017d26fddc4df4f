package infrastructure

import (
	"database/sql"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
)

// MockIncomeRepository is an in-memory stand-in used by the service tests.
type MockIncomeRepository struct {
	Incomes            []domain.Income
	FindAllByUserCalls int
	nextID             int64
}

func (m *MockIncomeRepository) Save(income domain.Income) (domain.Income, error) {
	m.nextID++
	income.ID = m.nextID
	m.Incomes = append(m.Incomes, income)
	return income, nil
}

func (m *MockIncomeRepository) Update(income domain.Income) error {
	for i := range m.Incomes {
		if m.Incomes[i].ID == income.ID {
			m.Incomes[i] = income
			return nil
		}
	}
	return nil
}

func (m *MockIncomeRepository) FindByID(incomeID int64) (*domain.Income, error) {
	for _, income := range m.Incomes {
		if income.ID == incomeID {
			found := income
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockIncomeRepository) ExistsByID(incomeID int64) (bool, error) {
	income, _ := m.FindByID(incomeID)
	return income != nil, nil
}

func (m *MockIncomeRepository) FindAll() ([]domain.Income, error) {
	return append([]domain.Income(nil), m.Incomes...), nil
}

func (m *MockIncomeRepository) FindAllByUserID(userID int64) ([]domain.Income, error) {
	m.FindAllByUserCalls++
	var incomes []domain.Income
	for _, income := range m.Incomes {
		if income.UserID == userID {
			incomes = append(incomes, income)
		}
	}
	return incomes, nil
}

func (m *MockIncomeRepository) SumAmountByUserID(userID int64) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	for _, income := range m.Incomes {
		if income.UserID == userID {
			total.Valid = true
			total.Float64 += income.Amount
		}
	}
	return total, nil
}

func (m *MockIncomeRepository) Delete(incomeID int64) error {
	for i, income := range m.Incomes {
		if income.ID == incomeID {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return nil
}
