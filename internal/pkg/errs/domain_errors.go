package errs

import "errors"

// Error categories. Sentinels in the domain and usecase layers are marked with
// one of these so the transport layer can pick a status without knowing them.
var (
	ErrValidation       = errors.New("validation failure")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrBusinessRule     = errors.New("business rule violation")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("expired token")
	ErrExternalProvider = errors.New("external provider error")
)

// Categorize returns a new sentinel with msg that matches category under Is.
func Categorize(msg string, category error) error {
	return Mark(New(msg), category)
}
