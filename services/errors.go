package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; storage-engine errors never cross this boundary raw.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation failed")
)
