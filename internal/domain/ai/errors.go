package ai

import "errors"

// Failure kinds for a generation call. Callers treat all three identically:
// one bounded retry, then fallback. None of them is fatal to a run.
var (
	ErrTimeout     = errors.New("ai: generation timed out")
	ErrUnavailable = errors.New("ai: generation unavailable")
	ErrRateLimited = errors.New("ai: rate limited")
)

// IsGenerationFailure reports whether err is one of the generation failure
// kinds (as opposed to a context cancellation or a programming error).
func IsGenerationFailure(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnavailable) || errors.Is(err, ErrRateLimited)
}
