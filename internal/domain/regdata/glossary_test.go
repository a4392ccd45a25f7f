package regdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlossaryLookup(t *testing.T) {
	g := DefaultGlossary()
	def, ok := g.Lookup("GDPR")
	require.True(t, ok)
	assert.NotEmpty(t, def)

	_, ok = g.Lookup("nonexistent-term")
	assert.False(t, ok)
}

func TestEnrichIsDeterministicAndBounded(t *testing.T) {
	g := DefaultGlossary()
	text := "This feature uses biometric authentication and geolocation tracking with GDPR consent flows."
	first := g.Enrich(text, 3)
	require.NotEmpty(t, first)
	assert.LessOrEqual(t, len(first), 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.Enrich(text, 3))
	}
}

func TestEnrichNoMatches(t *testing.T) {
	assert.Empty(t, DefaultGlossary().Enrich("plain text about nothing in particular", 5))
}
