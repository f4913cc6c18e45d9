package domain

import "errors"

// Core error taxonomy. Services return these unwrapped (or wrapped with
// %w); the transport layer maps them to response codes in one place.
var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNoActiveSession    = errors.New("no open check-in for today")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports missing or malformed required input rejected at
// the boundary before reaching the core.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error { return &ValidationError{Msg: msg} }
