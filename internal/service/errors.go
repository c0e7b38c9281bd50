package service

import "errors"

// Domain errors; handlers translate them to HTTP responses.
var (
	ErrInvalidData        = errors.New("invalid data")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidDateTime    = errors.New("invalid date or time format")
	ErrMealNotFound       = errors.New("meal not found")
	ErrNotAllowed         = errors.New("action not allowed")
	ErrUserNotFound       = errors.New("user not found")
)
