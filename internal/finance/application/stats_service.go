package application

import (
	"log"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

// FinanceStats is a point-in-time summary of one user's finances. It is
// recomputed from store state on every request and never persisted.
type FinanceStats struct {
	UserID            int64
	TotalIncome       float64
	TotalExpenses     float64
	NetBalance        float64
	ExpenseByCategory map[string]float64
	IncomeBySource    map[string]float64
	MonthlyExpenses   map[string]float64
	MonthlyIncome     map[string]float64
}

type StatsService struct {
	userService UserServiceInterface
	incomeRepo  domain.IncomeRepository
	expenseRepo domain.ExpenseRepository
}

func NewStatsService(userService UserServiceInterface, incomeRepo domain.IncomeRepository, expenseRepo domain.ExpenseRepository) *StatsService {
	return &StatsService{
		userService: userService,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// GetUserFinanceStats aggregates the user's full income and expense history
// into totals, net balance and the grouped facets. Groups with no records
// are absent from the maps, not zero.
func (s *StatsService) GetUserFinanceStats(userID int64) (FinanceStats, error) {
	log.Println("Getting User Stats...")
	exists, err := s.userService.DoesUserExist(userID)
	if err != nil {
		return FinanceStats{}, err
	}
	if !exists {
		return FinanceStats{}, financeErrors.NewUserNotFoundError(userID)
	}

	incomes, err := s.incomeRepo.FindAllByUserID(userID)
	if err != nil {
		return FinanceStats{}, err
	}
	expenses, err := s.expenseRepo.FindAllByUserID(userID)
	if err != nil {
		return FinanceStats{}, err
	}

	stats := FinanceStats{
		UserID:            userID,
		ExpenseByCategory: make(map[string]float64),
		IncomeBySource:    make(map[string]float64),
		MonthlyExpenses:   make(map[string]float64),
		MonthlyIncome:     make(map[string]float64),
	}

	for _, income := range incomes {
		stats.TotalIncome += income.Amount
		stats.IncomeBySource[income.Source] += income.Amount
		stats.MonthlyIncome[income.Date.Format("2006-01")] += income.Amount
	}
	for _, expense := range expenses {
		stats.TotalExpenses += expense.Amount
		stats.ExpenseByCategory[expense.Category] += expense.Amount
		stats.MonthlyExpenses[expense.Date.Format("2006-01")] += expense.Amount
	}
	stats.NetBalance = stats.TotalIncome - stats.TotalExpenses

	return stats, nil
}
