package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrValidation indicates a rejected admin submission
	ErrValidation = errors.New("validation failed")
	// ErrProviderFailure indicates the completion provider failed or timed out
	ErrProviderFailure = errors.New("completion provider failed")
)
