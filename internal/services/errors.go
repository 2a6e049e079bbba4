package services

import "errors"

var (
	// ErrDuplicateEmail rejects registration with an email already in use.
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmptyMenu rejects publishing a notification for a day without menu items.
	ErrEmptyMenu = errors.New("menu is empty")

	// ErrPastDeadline rejects confirmation toggles after the prior-day cutoff.
	ErrPastDeadline = errors.New("confirmation deadline has passed")
)
