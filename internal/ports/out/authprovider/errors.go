package authprovider

import "errors"

var (
	// ErrInvalidCredentials indicates the backend rejected the credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates registration with an email that is already in use.
	ErrEmailTaken = errors.New("email already in use")

	// ErrUnavailable indicates the identity backend could not be reached.
	ErrUnavailable = errors.New("auth provider unavailable")
)
