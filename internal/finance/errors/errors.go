package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// UserNotFoundError is returned whenever a referenced owner does not exist,
// on write paths (create/update) as well as on per-user queries.
type UserNotFoundError struct {
	ID int64
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with ID %d not found", e.ID)
}

func NewUserNotFoundError(id int64) error {
	return &UserNotFoundError{ID: id}
}

func IsUserNotFoundError(err error) bool {
	var userNotFoundError *UserNotFoundError
	ok := errors.As(err, &userNotFoundError)
	return ok
}

// ResourceNotFoundError is returned when an income or expense record is
// missing on read/update/delete-by-id operations.
type ResourceNotFoundError struct {
	ID int64
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("Resource with ID %d not found", e.ID)
}

func NewResourceNotFoundError(id int64) error {
	return &ResourceNotFoundError{ID: id}
}

func IsResourceNotFoundError(err error) bool {
	var resourceNotFoundError *ResourceNotFoundError
	ok := errors.As(err, &resourceNotFoundError)
	return ok
}
