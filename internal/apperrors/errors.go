// Package apperrors holds the sentinel errors shared across services so
// handlers can map them to HTTP status codes.
package apperrors

import "errors"

var (
	// ErrNotFound signals an unknown qaId (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrRateLimited signals a provider 429. The embedding client retries it
	// internally; callers only see it once retries are exhausted.
	ErrRateLimited = errors.New("rate limited")
)
