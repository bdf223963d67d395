package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a state transition was refused, e.g. cancelling
	// an order that is no longer pending.
	ErrConflict = errors.New("conflict")
)
