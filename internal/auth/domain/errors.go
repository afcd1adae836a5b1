package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotAllowed means the Google account is not the site owner's.
	ErrNotAllowed     = errors.New("account is not allowed to sign in")
	ErrMissingIDToken = errors.New("token response has no id_token")
)
