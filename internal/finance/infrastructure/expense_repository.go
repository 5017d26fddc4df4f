package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense domain.Expense) (domain.Expense, error) {
	err := r.db.QueryRow(
		`INSERT INTO expenses (title, description, date, category, amount, user_id)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		expense.Title, expense.Description, expense.Date, expense.Category, expense.Amount, expense.UserID,
	).Scan(&expense.ID)
	if err != nil {
		return domain.Expense{}, err
	}
	return expense, nil
}

func (r *ExpenseRepository) Update(expense domain.Expense) error {
	_, err := r.db.Exec(
		`UPDATE expenses SET title = $1, description = $2, date = $3, category = $4, amount = $5, user_id = $6
        WHERE id = $7`,
		expense.Title, expense.Description, expense.Date, expense.Category, expense.Amount, expense.UserID, expense.ID,
	)
	return err
}

func (r *ExpenseRepository) FindByID(expenseID int64) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.QueryRow(
		`SELECT id, title, description, date, category, amount, user_id FROM expenses WHERE id = $1`,
		expenseID,
	).Scan(&expense.ID, &expense.Title, &expense.Description, &expense.Date, &expense.Category, &expense.Amount, &expense.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) ExistsByID(expenseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM expenses WHERE id = $1)`, expenseID).Scan(&exists)
	return exists, err
}

func (r *ExpenseRepository) FindAll() ([]domain.Expense, error) {
	return r.queryExpenses(`SELECT id, title, description, date, category, amount, user_id FROM expenses`)
}

func (r *ExpenseRepository) FindAllByUserID(userID int64) ([]domain.Expense, error) {
	return r.queryExpenses(
		`SELECT id, title, description, date, category, amount, user_id FROM expenses WHERE user_id = $1`,
		userID,
	)
}

func (r *ExpenseRepository) SumAmountByUserID(userID int64) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRow(`SELECT SUM(amount) FROM expenses WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

func (r *ExpenseRepository) Delete(expenseID int64) error {
	_, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, expenseID)
	return err
}

func (r *ExpenseRepository) queryExpenses(query string, args ...interface{}) ([]domain.Expense, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.Title, &expense.Description, &expense.Date, &expense.Category, &expense.Amount, &expense.UserID); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}
