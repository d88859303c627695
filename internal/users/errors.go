package users

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken rejects registration with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
