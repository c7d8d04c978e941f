package domain

import "errors"

// Error taxonomy. Every service signals one of these; the response
// helper maps each to a single stable status code.
var (
	ErrMissingFields    = errors.New("required fields are missing")
	ErrMissingParameter = errors.New("required query parameter is missing")
	ErrInvalidID        = errors.New("invalid id format")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrInvalidRole      = errors.New("invalid role value")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrInvalidState     = errors.New("operation not permitted in current state")
	ErrNoChange         = errors.New("no changes made")
	ErrUnauthenticated  = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrStore            = errors.New("store error")
)
