package application

import (
	"log"
	"sort"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/fintrack/FinanceTracker/internal/finance/errors"
)

type ExpenseService struct {
	repo        domain.ExpenseRepository
	userService UserServiceInterface
}

func NewExpenseService(repo domain.ExpenseRepository, userService UserServiceInterface) *ExpenseService {
	return &ExpenseService{repo: repo, userService: userService}
}

func (s *ExpenseService) CreateExpense(expense domain.Expense) (domain.Expense, error) {
	log.Printf("Posting new expense for user ID: %d", expense.UserID)
	if err := expense.Validate(); err != nil {
		return domain.Expense{}, err
	}
	if err := s.resolveOwner(expense.UserID); err != nil {
		return domain.Expense{}, err
	}
	saved, err := s.repo.Save(expense)
	if err != nil {
		return domain.Expense{}, err
	}
	log.Printf("New expense posted with ID: %d", saved.ID)
	return saved, nil
}

func (s *ExpenseService) UpdateExpense(id int64, expense domain.Expense) (domain.Expense, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return domain.Expense{}, err
	}
	if existing == nil {
		return domain.Expense{}, financeErrors.NewResourceNotFoundError(id)
	}
	log.Printf("Updating expense with ID %d...", id)
	if err := expense.Validate(); err != nil {
		return domain.Expense{}, err
	}
	if err := s.resolveOwner(expense.UserID); err != nil {
		return domain.Expense{}, err
	}
	existing.Title = expense.Title
	existing.Description = expense.Description
	existing.Date = expense.Date
	existing.Category = expense.Category
	existing.Amount = expense.Amount
	existing.UserID = expense.UserID
	if err := s.repo.Update(*existing); err != nil {
		return domain.Expense{}, err
	}
	return *existing, nil
}

func (s *ExpenseService) GetExpenseByID(id int64) (domain.Expense, error) {
	expense, err := s.repo.FindByID(id)
	if err != nil {
		return domain.Expense{}, err
	}
	if expense == nil {
		return domain.Expense{}, financeErrors.NewResourceNotFoundError(id)
	}
	log.Printf("Getting expense with ID %d...", id)
	return *expense, nil
}

func (s *ExpenseService) GetAllExpenses() ([]domain.Expense, error) {
	log.Println("Getting all expenses...")
	expenses, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	sortExpensesByDateDesc(expenses)
	return expenses, nil
}

func (s *ExpenseService) DeleteExpense(id int64) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("Expense with ID %d not found", id)
		return financeErrors.NewResourceNotFoundError(id)
	}
	log.Printf("Deleting expense with ID %d...", id)
	return s.repo.Delete(id)
}

func (s *ExpenseService) GetAllExpensesByUser(userID int64) ([]domain.Expense, error) {
	if err := s.resolveOwner(userID); err != nil {
		log.Printf("Cannot get all expenses for User with ID %d", userID)
		return nil, err
	}
	log.Printf("Getting expenses for user with ID %d", userID)
	expenses, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	sortExpensesByDateDesc(expenses)
	return expenses, nil
}

func (s *ExpenseService) GetTotalExpenseByUser(userID int64) (float64, error) {
	if err := s.resolveOwner(userID); err != nil {
		log.Printf("Cannot get total expenses. User with ID %d was not found", userID)
		return 0, err
	}
	log.Printf("Getting total expenses for user with ID %d", userID)
	total, err := s.repo.SumAmountByUserID(userID)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0.0, nil
	}
	return total.Float64, nil
}

func (s *ExpenseService) resolveOwner(userID int64) error {
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

func sortExpensesByDateDesc(expenses []domain.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
}
