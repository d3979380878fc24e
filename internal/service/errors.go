package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login on any username or
	// password mismatch. Mapped to 401; not logged as an error.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
