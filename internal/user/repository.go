package user

import (
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	createUser(user *User) error
	getUserByID(id int64) (*User, error)
	getAllUsers() ([]User, error)
	updateUser(user *User) error
	deleteUser(id int64) error
	existsByID(id int64) (bool, error)
	userExistsByUsernameOrEmail(username, email string) (*User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id;
	`
	err := r.db.QueryRow(query, user.Username, user.Email).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) getUserByID(id int64) (*User, error) {
	query := `
		SELECT id, username, email
		FROM users
		WHERE id = $1
	`
	var user User
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) getAllUsers() ([]User, error) {
	rows, err := r.db.Query(`SELECT id, username, email FROM users`)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %v", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) updateUser(user *User) error {
	_, err := r.db.Exec(
		`UPDATE users SET username = $1, email = $2 WHERE id = $3`,
		user.Username, user.Email, user.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update user: %v", err)
	}
	return nil
}

// deleteUser removes the user's incomes and expenses together with the user
// itself in a single transaction, so a half-done cascade can never be
// observed.
func (r *userRepository) deleteUser(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin delete transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM incomes WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("could not delete user incomes: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM expenses WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("could not delete user expenses: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("could not delete user: %v", err)
	}
	return tx.Commit()
}

func (r *userRepository) existsByID(id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *userRepository) userExistsByUsernameOrEmail(username, email string) (*User, error) {
	query := `
		SELECT id, username, email
		FROM users
		WHERE username = $1 OR email = $2
	`
	var user User
	err := r.db.QueryRow(query, username, email).Scan(&user.ID, &user.Username, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not check user uniqueness: %v", err)
	}
	return &user, nil
}
