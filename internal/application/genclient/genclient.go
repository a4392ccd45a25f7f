// Package genclient centralizes the timeout-then-fallback policy around the
// text-generation port: per-call deadline, at most one retry, and tolerant
// decoding of structured output. Every stage and the jurisdiction sweep call
// generation through this one abstraction.
package genclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/complyradar/complyradar/internal/domain/ai"
)

// ErrUnparseable means the generation succeeded but no structured object
// could be recovered from the text. Callers fall back exactly as they do for
// a generation failure.
var ErrUnparseable = errors.New("genclient: no structured object in response")

// Caller wraps a Generator with the shared resilience policy.
type Caller struct {
	gen     ai.Generator
	timeout time.Duration
	retries int
	log     zerolog.Logger
}

// New builds a Caller. gen may be nil, in which case every call reports
// ai.ErrUnavailable immediately and the pipeline runs on fallbacks alone.
func New(gen ai.Generator, timeout time.Duration, retries int, log zerolog.Logger) *Caller {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	if retries > 1 {
		retries = 1 // bounded retry, never more than one
	}
	return &Caller{gen: gen, timeout: timeout, retries: retries, log: log}
}

// Available reports whether a generator is configured at all.
func (c *Caller) Available() bool { return c != nil && c.gen != nil }

// Text runs one generation call under the shared policy and returns the raw
// text. All failure kinds are treated identically by callers: fall back.
func (c *Caller) Text(ctx context.Context, prompt string, maxChars int) (string, error) {
	if !c.Available() {
		return "", ai.ErrUnavailable
	}
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		text, err := c.gen.Generate(callCtx, prompt, maxChars)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !ai.IsGenerationFailure(err) {
			// context cancellation or programming error: do not retry
			return "", err
		}
		c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("generation call failed")
	}
	return "", lastErr
}

// JSONObject runs a generation call and decodes the response into a map
// using the tolerant strategy: strict parse, then fence stripping, then
// balanced-brace substring extraction.
func (c *Caller) JSONObject(ctx context.Context, prompt string, maxChars int) (map[string]any, error) {
	text, err := c.Text(ctx, prompt, maxChars)
	if err != nil {
		return nil, err
	}
	obj, err := DecodeObject(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return obj, nil
}

// DecodeObject recovers a JSON object from possibly messy generation output.
func DecodeObject(text string) (map[string]any, error) {
	cleaned := StripFences(text)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj, nil
	}

	sub, ok := balancedObject(cleaned)
	if !ok {
		return nil, errors.New("no object delimiters found")
	}
	if err := json.Unmarshal([]byte(sub), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// StripFences removes markdown code fences around a response.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// balancedObject scans for the first top-level {...} span, tracking strings
// and escapes so braces inside values do not confuse the count.
func balancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// Helpers for reading loosely typed model payloads.

// Str extracts a string field.
func Str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Num extracts a numeric field, or def when absent/mistyped.
func Num(m map[string]any, key string, def float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}

// Bool extracts a boolean field.
func Bool(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

// Strings extracts a []string field, dropping non-string elements.
func Strings(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// Objects extracts a []map field.
func Objects(m map[string]any, key string) []map[string]any {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if o, ok := e.(map[string]any); ok {
			out = append(out, o)
		}
	}
	return out
}

// Clamp01 bounds a confidence-like value into [0,1], substituting def for
// out-of-range garbage.
func Clamp01(v, def float64) float64 {
	if v < 0 || v > 1 {
		return def
	}
	return v
}
