package ai

import "context"

// Generator is the opaque text-generation capability. Implementations must
// honor the context deadline and map provider failures onto the sentinel
// errors in this package so callers can fall back uniformly.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error)
}
