package domain

import "errors"

var (
	// ErrNotFound marks a request for a product ID the catalog does not
	// contain. Callers distinguish it from transport failures to show a
	// different message.
	ErrNotFound = errors.New("product not found")

	// ErrInvalidCredentials is returned by the simulated credential check.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
