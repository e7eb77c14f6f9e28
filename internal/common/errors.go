package common

import (
	"errors"
	"strings"
)

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Authorization errors: the caller is known but holds the wrong role.
	ErrorUnauthorized = errors.New("unauthorized")

	// Authentication errors: the caller could not be identified.
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken      = errors.New("invalid token")

	// Stream state errors.
	ErrInvalidState      = errors.New("invalid state")
	ErrNothingToDo       = errors.New("nothing to do")
	ErrTimeoutNotReached = errors.New("reclaim timeout not reached")

	// Optional collaborators that were not configured.
	ErrNotConfigured = errors.New("not configured")

	ErrorInternal = errors.New("internal error")
)

// taxonomy lists sentinels that travel over the wire as message prefixes.
var taxonomy = []error{
	ErrorNotFound,
	ErrorUnauthorized,
	ErrorUnauthenticated,
	ErrInvalidToken,
	ErrInvalidState,
	ErrNothingToDo,
	ErrTimeoutNotReached,
	ErrNotConfigured,
	ErrorInternal,
}

// MatchSentinel returns the sentinel whose text prefixes msg, or nil.
func MatchSentinel(msg string) error {
	for _, e := range taxonomy {
		if strings.HasPrefix(msg, e.Error()) {
			return e
		}
	}
	return nil
}
