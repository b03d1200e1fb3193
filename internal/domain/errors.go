package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNoRewards indicates a claim was attempted with no reward credits left.
	ErrNoRewards = errors.New("no rewards available")
	// ErrInvalidCredentials indicates a failed admin login or a bad token.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput tags request validation failures; the message is safe to
	// show to the caller.
	ErrInvalidInput = errors.New("invalid input")
)

type invalidInputError struct {
	msg string
}

func (e invalidInputError) Error() string { return e.msg }

func (e invalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Invalid builds a validation error carrying msg that matches ErrInvalidInput
// under errors.Is.
func Invalid(msg string) error {
	return invalidInputError{msg: msg}
}
