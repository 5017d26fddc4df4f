package interfaces

import (
	"github.com/fintrack/FinanceTracker/internal/finance/application"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

type MockStatsService struct {
	Stats application.FinanceStats
}

func (m *MockStatsService) GetUserFinanceStats(userID int64) (application.FinanceStats, error) {
	if m.Stats.UserID != userID {
		return application.FinanceStats{}, financeErrors.NewUserNotFoundError(userID)
	}
	return m.Stats, nil
}
