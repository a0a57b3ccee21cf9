// Package apperrors defines the error taxonomy shared by the service and
// HTTP layers. Operations wrap these sentinels with context via fmt.Errorf
// and handlers map them to status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrInvalidArgument marks malformed or out-of-range input. Raised
	// before any store access.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a missing hotel, room or booking id.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a room that is unavailable for the requested dates,
	// including races the store surfaced as constraint violations.
	ErrConflict = errors.New("conflict")

	// ErrTransient marks store unavailability, deadlocks and lock wait
	// timeouts. Safe to retry at the caller's discretion.
	ErrTransient = errors.New("transient storage error")
)
