package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/fintrack/FinanceTracker/internal/finance/domain"
)

type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Save(income domain.Income) (domain.Income, error) {
	err := r.db.QueryRow(
		`INSERT INTO incomes (source, description, date, amount, user_id)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		income.Source, income.Description, income.Date, income.Amount, income.UserID,
	).Scan(&income.ID)
	if err != nil {
		return domain.Income{}, err
	}
	return income, nil
}

func (r *IncomeRepository) Update(income domain.Income) error {
	_, err := r.db.Exec(
		`UPDATE incomes SET source = $1, description = $2, date = $3, amount = $4, user_id = $5
        WHERE id = $6`,
		income.Source, income.Description, income.Date, income.Amount, income.UserID, income.ID,
	)
	return err
}

func (r *IncomeRepository) FindByID(incomeID int64) (*domain.Income, error) {
	var income domain.Income
	err := r.db.QueryRow(
		`SELECT id, source, description, date, amount, user_id FROM incomes WHERE id = $1`,
		incomeID,
	).Scan(&income.ID, &income.Source, &income.Description, &income.Date, &income.Amount, &income.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *IncomeRepository) ExistsByID(incomeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM incomes WHERE id = $1)`, incomeID).Scan(&exists)
	return exists, err
}

func (r *IncomeRepository) FindAll() ([]domain.Income, error) {
	return r.queryIncomes(`SELECT id, source, description, date, amount, user_id FROM incomes`)
}

func (r *IncomeRepository) FindAllByUserID(userID int64) ([]domain.Income, error) {
	return r.queryIncomes(
		`SELECT id, source, description, date, amount, user_id FROM incomes WHERE user_id = $1`,
		userID,
	)
}

func (r *IncomeRepository) SumAmountByUserID(userID int64) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRow(`SELECT SUM(amount) FROM incomes WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

func (r *IncomeRepository) Delete(incomeID int64) error {
	_, err := r.db.Exec(`DELETE FROM incomes WHERE id = $1`, incomeID)
	return err
}

func (r *IncomeRepository) queryIncomes(query string, args ...interface{}) ([]domain.Income, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []domain.Income
	for rows.Next() {
		var income domain.Income
		if err := rows.Scan(&income.ID, &income.Source, &income.Description, &income.Date, &income.Amount, &income.UserID); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}
