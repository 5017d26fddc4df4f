package application

import (
	"math"
	"testing"
	"time"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
	"github.com/fintrack/FinanceTracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func areEqualRounded(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func sumValues(m map[string]float64) float64 {
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum
}

func TestGetUserFinanceStats_ExampleScenario(t *testing.T) {
	incomeRepo := &infrastructure.MockIncomeRepository{
		Incomes: []domain.Income{
			{ID: 1, Source: "Salary", Amount: 3000, Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 2, Source: "Freelance", Amount: 1000, Date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), UserID: 1},
		},
	}
	expenseRepo := &infrastructure.MockExpenseRepository{
		Expenses: []domain.Expense{
			{ID: 1, Category: "Groceries", Amount: 500, Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 2, Category: "Rent", Amount: 1000, Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), UserID: 1},
		},
	}
	service := NewStatsService(&MockUserService{ExistingUsers: map[int64]bool{1: true}}, incomeRepo, expenseRepo)

	stats, err := service.GetUserFinanceStats(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.UserID)
	assert.Equal(t, 4000.0, stats.TotalIncome)
	assert.Equal(t, 1500.0, stats.TotalExpenses)
	assert.Equal(t, 2500.0, stats.NetBalance)
	assert.Equal(t, map[string]float64{"Salary": 3000.0, "Freelance": 1000.0}, stats.IncomeBySource)
	assert.Equal(t, map[string]float64{"Groceries": 500.0, "Rent": 1000.0}, stats.ExpenseByCategory)
	assert.Equal(t, map[string]float64{"2025-01": 4000.0}, stats.MonthlyIncome)
	assert.Equal(t, map[string]float64{"2025-01": 1500.0}, stats.MonthlyExpenses)
}

func TestGetUserFinanceStats_FacetSumsMatchTotals(t *testing.T) {
	incomeRepo := &infrastructure.MockIncomeRepository{
		Incomes: []domain.Income{
			{ID: 1, Source: "Salary", Amount: 2100.33, Date: time.Date(2024, time.November, 28, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 2, Source: "Salary", Amount: 2100.33, Date: time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 3, Source: "Dividends", Amount: 55.5, Date: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 4, Source: "Freelance", Amount: 840.25, Date: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), UserID: 1},
		},
	}
	expenseRepo := &infrastructure.MockExpenseRepository{
		Expenses: []domain.Expense{
			{ID: 1, Category: "Rent", Amount: 950, Date: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 2, Category: "Groceries", Amount: 123.45, Date: time.Date(2024, time.December, 7, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 3, Category: "Groceries", Amount: 98.7, Date: time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC), UserID: 1},
			{ID: 4, Category: "Transport", Amount: 49.99, Date: time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC), UserID: 1},
		},
	}
	service := NewStatsService(&MockUserService{ExistingUsers: map[int64]bool{1: true}}, incomeRepo, expenseRepo)

	stats, err := service.GetUserFinanceStats(1)
	assert.NoError(t, err)

	assert.True(t, areEqualRounded(sumValues(stats.IncomeBySource), stats.TotalIncome))
	assert.True(t, areEqualRounded(sumValues(stats.MonthlyIncome), stats.TotalIncome))
	assert.True(t, areEqualRounded(sumValues(stats.ExpenseByCategory), stats.TotalExpenses))
	assert.True(t, areEqualRounded(sumValues(stats.MonthlyExpenses), stats.TotalExpenses))
	assert.True(t, areEqualRounded(stats.NetBalance, stats.TotalIncome-stats.TotalExpenses))

	// records span three calendar months
	assert.Len(t, stats.MonthlyIncome, 3)
	assert.Len(t, stats.MonthlyExpenses, 2)
}

func TestGetUserFinanceStats_NoTransactions(t *testing.T) {
	service := NewStatsService(
		&MockUserService{ExistingUsers: map[int64]bool{1: true}},
		&infrastructure.MockIncomeRepository{},
		&infrastructure.MockExpenseRepository{},
	)

	stats, err := service.GetUserFinanceStats(1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, stats.TotalIncome)
	assert.Equal(t, 0.0, stats.TotalExpenses)
	assert.Equal(t, 0.0, stats.NetBalance)
	assert.Empty(t, stats.IncomeBySource)
	assert.Empty(t, stats.ExpenseByCategory)
	assert.Empty(t, stats.MonthlyIncome)
	assert.Empty(t, stats.MonthlyExpenses)
}

func TestGetUserFinanceStats_UnknownUserTouchesNoStore(t *testing.T) {
	incomeRepo := &infrastructure.MockIncomeRepository{}
	expenseRepo := &infrastructure.MockExpenseRepository{}
	service := NewStatsService(&MockUserService{ExistingUsers: map[int64]bool{}}, incomeRepo, expenseRepo)

	_, err := service.GetUserFinanceStats(42)
	assert.True(t, financeErrors.IsUserNotFoundError(err))
	assert.Equal(t, 0, incomeRepo.FindAllByUserCalls)
	assert.Equal(t, 0, expenseRepo.FindAllByUserCalls)
}
