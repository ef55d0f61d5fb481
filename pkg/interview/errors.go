package interview

import "errors"

var (
	// ErrInvalidConfiguration marks a session created from unusable data,
	// e.g. an empty question set. This is a deployment error, not a
	// respondent mistake.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrProtocolViolation marks an event that arrived in a state which
	// forbids it. The session is left untouched; callers log and continue.
	ErrProtocolViolation = errors.New("protocol violation")

	// ErrDuplicateSession marks an attempt to open a second session for a
	// connection that already owns one.
	ErrDuplicateSession = errors.New("duplicate session")

	// ErrSessionNotFound marks a lookup for a connection with no session.
	ErrSessionNotFound = errors.New("session not found")
)
