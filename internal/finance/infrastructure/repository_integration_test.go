package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	database "github.com/fintrack/FinanceTracker/db"
	"github.com/fintrack/FinanceTracker/internal/finance/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("financetracker"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, database.RunMigrations(db))
	return db
}

func insertTestUser(t *testing.T, db *sql.DB, username, email string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(
		`INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id`,
		username, email,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestIncomeRepository_Postgres(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIncomeRepository(db)
	userID := insertTestUser(t, db, "john", "john@example.com")
	otherID := insertTestUser(t, db, "jane", "jane@example.com")

	date := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	saved, err := repo.Save(domain.Income{
		Source:      "Salary",
		Description: "January paycheck",
		Date:        date,
		Amount:      3000,
		UserID:      userID,
	})
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := repo.FindByID(saved.ID)
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Salary", found.Source)
	assert.Equal(t, 3000.0, found.Amount)
	assert.Equal(t, userID, found.UserID)
	assert.Equal(t, date.Year(), found.Date.Year())
	assert.Equal(t, date.Month(), found.Date.Month())
	assert.Equal(t, date.Day(), found.Date.Day())

	_, err = repo.Save(domain.Income{Source: "Freelance", Date: date, Amount: 1000, UserID: userID})
	assert.NoError(t, err)

	incomes, err := repo.FindAllByUserID(userID)
	assert.NoError(t, err)
	assert.Len(t, incomes, 2)

	total, err := repo.SumAmountByUserID(userID)
	assert.NoError(t, err)
	assert.True(t, total.Valid)
	assert.Equal(t, 4000.0, total.Float64)

	// no records for the other user: the aggregate is NULL, not zero
	empty, err := repo.SumAmountByUserID(otherID)
	assert.NoError(t, err)
	assert.False(t, empty.Valid)

	saved.Amount = 3100
	saved.UserID = otherID
	assert.NoError(t, repo.Update(saved))
	updated, err := repo.FindByID(saved.ID)
	assert.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 3100.0, updated.Amount)
	assert.Equal(t, otherID, updated.UserID)

	assert.NoError(t, repo.Delete(saved.ID))
	exists, err := repo.ExistsByID(saved.ID)
	assert.NoError(t, err)
	assert.False(t, exists)

	missing, err := repo.FindByID(saved.ID)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestExpenseRepository_Postgres(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	userID := insertTestUser(t, db, "john", "john@example.com")

	date := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	saved, err := repo.Save(domain.Expense{
		Title:    "Groceries",
		Date:     date,
		Category: "Groceries",
		Amount:   500,
		UserID:   userID,
	})
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	_, err = repo.Save(domain.Expense{Date: date, Category: "Rent", Amount: 1000, UserID: userID})
	assert.NoError(t, err)

	expenses, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, expenses, 2)

	total, err := repo.SumAmountByUserID(userID)
	assert.NoError(t, err)
	assert.True(t, total.Valid)
	assert.Equal(t, 1500.0, total.Float64)
}
