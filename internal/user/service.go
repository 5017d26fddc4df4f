package user

import (
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/badoux/checkmail"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameRequired      = errors.New("username must not be blank")
	ErrInvalidEmail          = errors.New("email address is not valid")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Service interface {
	CreateUser(username, email string) (*User, error)
	GetUserByID(id int64) (*User, error)
	GetAllUsers() ([]User, error)
	UpdateUser(id int64, username, email string) (*User, error)
	DeleteUser(id int64) error
	DoesUserExist(id int64) (bool, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func validateUser(username, email string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) CreateUser(username, email string) (*User, error) {
	if err := validateUser(username, email); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(username, email, 0); err != nil {
		return nil, err
	}
	user := &User{Username: username, Email: email}
	if err := s.repo.createUser(user); err != nil {
		log.Println("Error during creating the user:", err)
		return nil, err
	}
	log.Printf("Posting new user with ID: %d", user.ID)
	return user, nil
}

func (s *service) GetUserByID(id int64) (*User, error) {
	user, err := s.repo.getUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	log.Printf("Getting user with ID %d...", id)
	return user, nil
}

// GetAllUsers lists every user, most recently created first.
func (s *service) GetAllUsers() ([]User, error) {
	log.Println("Getting all users...")
	users, err := s.repo.getAllUsers()
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID > users[j].ID
	})
	return users, nil
}

func (s *service) UpdateUser(id int64, username, email string) (*User, error) {
	existing, err := s.repo.getUserByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}
	log.Printf("Updating user with ID %d...", id)
	if err := validateUser(username, email); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(username, email, id); err != nil {
		return nil, err
	}
	existing.Username = username
	existing.Email = email
	if err := s.repo.updateUser(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteUser removes the user together with all owned income and expense
// records; the repository runs the cascade in one SQL transaction.
func (s *service) DeleteUser(id int64) error {
	exists, err := s.repo.existsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("User with ID %d not found", id)
		return ErrUserNotFound
	}
	log.Printf("Deleting user with ID %d...", id)
	return s.repo.deleteUser(id)
}

func (s *service) DoesUserExist(id int64) (bool, error) {
	return s.repo.existsByID(id)
}

func (s *service) checkUniqueness(username, email string, selfID int64) error {
	existing, err := s.repo.userExistsByUsernameOrEmail(username, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		if existing.Username == username {
			return ErrUsernameAlreadyExists
		}
		return ErrEmailAlreadyExists
	}
	return nil
}
