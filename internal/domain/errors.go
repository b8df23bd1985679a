package domain

import "errors"

// Sentinel errors used across all layers. The statistics core itself never
// returns errors (every parser and categorizer is total); these cover the
// boundaries: auth, upstream fetch, request validation.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")
	ErrUnavailable  = errors.New("upstream unavailable")
)
