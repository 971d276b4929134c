package moderation

import "errors"

var (
	// ErrIndexOutOfRange is returned when a warning removal refers to an
	// index past the end of the user's current history. The caller should
	// re-fetch and retry.
	ErrIndexOutOfRange = errors.New("warning index out of range")

	// ErrNoSuchSuspension is returned when cancelling a suspension that does
	// not exist (never created, already restored, or already cancelled).
	ErrNoSuchSuspension = errors.New("no active suspension for user")
)
