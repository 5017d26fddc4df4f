package application

import (
	"log"
	"sort"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

// UserServiceInterface is the slice of the user service the finance services
// need: owner resolution before any write or per-user query.
type UserServiceInterface interface {
	DoesUserExist(userID int64) (bool, error)
}

type IncomeService struct {
	repo        domain.IncomeRepository
	userService UserServiceInterface
}

func NewIncomeService(repo domain.IncomeRepository, userService UserServiceInterface) *IncomeService {
	return &IncomeService{repo: repo, userService: userService}
}

// CreateIncome validates the record, resolves its owner and persists it.
// Nothing is written when validation or owner resolution fails.
func (s *IncomeService) CreateIncome(income domain.Income) (domain.Income, error) {
	log.Printf("Posting new income for user ID: %d", income.UserID)
	if err := income.Validate(); err != nil {
		return domain.Income{}, err
	}
	if err := s.resolveOwner(income.UserID); err != nil {
		return domain.Income{}, err
	}
	saved, err := s.repo.Save(income)
	if err != nil {
		return domain.Income{}, err
	}
	log.Printf("New income posted with ID: %d", saved.ID)
	return saved, nil
}

// UpdateIncome overwrites all mutable fields of an existing record,
// re-running the same validation and owner resolution as create.
func (s *IncomeService) UpdateIncome(id int64, income domain.Income) (domain.Income, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return domain.Income{}, err
	}
	if existing == nil {
		return domain.Income{}, financeErrors.NewResourceNotFoundError(id)
	}
	log.Printf("Updating income with ID %d...", id)
	if err := income.Validate(); err != nil {
		return domain.Income{}, err
	}
	if err := s.resolveOwner(income.UserID); err != nil {
		return domain.Income{}, err
	}
	existing.Source = income.Source
	existing.Description = income.Description
	existing.Date = income.Date
	existing.Amount = income.Amount
	existing.UserID = income.UserID
	if err := s.repo.Update(*existing); err != nil {
		return domain.Income{}, err
	}
	return *existing, nil
}

func (s *IncomeService) GetIncomeByID(id int64) (domain.Income, error) {
	income, err := s.repo.FindByID(id)
	if err != nil {
		return domain.Income{}, err
	}
	if income == nil {
		return domain.Income{}, financeErrors.NewResourceNotFoundError(id)
	}
	log.Printf("Getting income with ID %d...", id)
	return *income, nil
}

// GetAllIncome returns every income record across all users, newest date
// first. Ties keep the store's order.
func (s *IncomeService) GetAllIncome() ([]domain.Income, error) {
	log.Println("Getting all income...")
	incomes, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	sortIncomesByDateDesc(incomes)
	return incomes, nil
}

func (s *IncomeService) DeleteIncome(id int64) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("Income with ID %d not found", id)
		return financeErrors.NewResourceNotFoundError(id)
	}
	log.Printf("Deleting income with ID %d...", id)
	return s.repo.Delete(id)
}

func (s *IncomeService) GetAllIncomeByUser(userID int64) ([]domain.Income, error) {
	if err := s.resolveOwner(userID); err != nil {
		log.Printf("Cannot get income for User with ID %d", userID)
		return nil, err
	}
	log.Printf("Getting income for user with ID %d...", userID)
	incomes, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	sortIncomesByDateDesc(incomes)
	return incomes, nil
}

// GetTotalIncomeByUser sums the user's income amounts. A user with no income
// yields 0.0, not an error: the store reports an absent aggregate as NULL.
func (s *IncomeService) GetTotalIncomeByUser(userID int64) (float64, error) {
	if err := s.resolveOwner(userID); err != nil {
		log.Printf("Cannot get total income for User with ID %d", userID)
		return 0, err
	}
	log.Printf("Getting total income for user with ID %d", userID)
	total, err := s.repo.SumAmountByUserID(userID)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0.0, nil
	}
	return total.Float64, nil
}

func (s *IncomeService) resolveOwner(userID int64) error {
	exists, err := s.userService.DoesUserExist(userID)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("User with ID %d not found", userID)
		return financeErrors.NewUserNotFoundError(userID)
	}
	return nil
}

func sortIncomesByDateDesc(incomes []domain.Income) {
	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].Date.After(incomes[j].Date)
	})
}
