package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRequired      = errors.New("email must not be empty")
	ErrEmailInvalid       = errors.New("email is not a valid address")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
