package subrequest

import "errors"

// Domain error taxonomy. These are surfaced to the caller as-is and never
// retried; store-level failures propagate wrapped instead.
var (
	// ErrUnauthorized means no authenticated actor was present
	ErrUnauthorized = errors.New("no authenticated actor")

	// ErrForbidden means the actor is not allowed to act on this request
	ErrForbidden = errors.New("only the requesting worker may modify this request")

	// ErrNotFound means the request does not exist
	ErrNotFound = errors.New("substitute request not found")

	// ErrNoActiveNomination means cancel-nomination was called while the
	// request was not awaiting nomination confirmation
	ErrNoActiveNomination = errors.New("no active nomination to cancel")

	// ErrNotCancellable means the request has already reached a terminal state
	ErrNotCancellable = errors.New("cannot cancel request in its current state")

	// ErrNotAcceptable means the nomination is no longer awaiting confirmation
	ErrNotAcceptable = errors.New("nomination is no longer awaiting confirmation")

	// ErrInvalidTimeRange means the request's start time is not before its end time
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrInvalidInput wraps malformed or missing request fields
	ErrInvalidInput = errors.New("invalid input")
)
