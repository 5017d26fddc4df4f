package interfaces

import (
	"time"

	"github.com/fintrack/FinanceTracker/internal/finance/application"
	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

const dateLayout = "2006-01-02"

// IncomeDTO is the wire shape of an income record. Dates travel as
// YYYY-MM-DD strings.
type IncomeDTO struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	UserID      int64   `json:"userId"`
}

type ExpenseDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	UserID      int64   `json:"userId"`
}

type StatsDTO struct {
	UserID            int64              `json:"userId"`
	TotalIncome       float64            `json:"totalIncome"`
	TotalExpenses     float64            `json:"totalExpenses"`
	NetBalance        float64            `json:"netBalance"`
	ExpenseByCategory map[string]float64 `json:"expenseByCategory"`
	IncomeBySource    map[string]float64 `json:"incomeBySource"`
	MonthlyExpenses   map[string]float64 `json:"monthlyExpenses"`
	MonthlyIncome     map[string]float64 `json:"monthlyIncome"`
}

func newStatsDTO(stats application.FinanceStats) StatsDTO {
	return StatsDTO{
		UserID:            stats.UserID,
		TotalIncome:       stats.TotalIncome,
		TotalExpenses:     stats.TotalExpenses,
		NetBalance:        stats.NetBalance,
		ExpenseByCategory: stats.ExpenseByCategory,
		IncomeBySource:    stats.IncomeBySource,
		MonthlyExpenses:   stats.MonthlyExpenses,
		MonthlyIncome:     stats.MonthlyIncome,
	}
}

func newIncomeDTO(income domain.Income) IncomeDTO {
	return IncomeDTO{
		ID:          income.ID,
		Source:      income.Source,
		Description: income.Description,
		Date:        income.Date.Format(dateLayout),
		Amount:      income.Amount,
		UserID:      income.UserID,
	}
}

func newIncomeDTOs(incomes []domain.Income) []IncomeDTO {
	dtos := make([]IncomeDTO, 0, len(incomes))
	for _, income := range incomes {
		dtos = append(dtos, newIncomeDTO(income))
	}
	return dtos
}

func newExpenseDTO(expense domain.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          expense.ID,
		Title:       expense.Title,
		Description: expense.Description,
		Date:        expense.Date.Format(dateLayout),
		Category:    expense.Category,
		Amount:      expense.Amount,
		UserID:      expense.UserID,
	}
}

func newExpenseDTOs(expenses []domain.Expense) []ExpenseDTO {
	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, newExpenseDTO(expense))
	}
	return dtos
}

// toIncome parses the DTO into a domain record. An empty date string maps to
// the zero time so the service-level "Date is required" check fires; a
// malformed one is rejected here.
func (dto IncomeDTO) toIncome() (domain.Income, error) {
	date, err := parseDate(dto.Date)
	if err != nil {
		return domain.Income{}, err
	}
	return domain.Income{
		ID:          dto.ID,
		Source:      dto.Source,
		Description: dto.Description,
		Date:        date,
		Amount:      dto.Amount,
		UserID:      dto.UserID,
	}, nil
}

func (dto ExpenseDTO) toExpense() (domain.Expense, error) {
	date, err := parseDate(dto.Date)
	if err != nil {
		return domain.Expense{}, err
	}
	return domain.Expense{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Date:        date,
		Category:    dto.Category,
		Amount:      dto.Amount,
		UserID:      dto.UserID,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, financeErrors.NewValidationError("Date must use the YYYY-MM-DD format")
	}
	return date, nil
}
