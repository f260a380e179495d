package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations
var (
	// ErrItemNotFound indicates the requested catalog item does not exist
	ErrItemNotFound = errors.New("media item not found")

	// ErrLookupNotConfigured indicates the external lookup API key is missing
	ErrLookupNotConfigured = errors.New("movie lookup is not configured: set the TMDB API key")

	// ErrRateLimited indicates the external lookup budget is exhausted
	ErrRateLimited = errors.New("too many lookup requests, try again shortly")
)

// ValidationError rejects a mutation before any state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// PersistenceError reports a failed durable write. The in-memory collection
// stays authoritative for the rest of the session, so this is non-fatal.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// RequestError reports a failed external lookup call.
type RequestError struct {
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("lookup request failed with status %d", e.Status)
	}
	return fmt.Sprintf("lookup request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
