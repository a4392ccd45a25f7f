package extract

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/domain/ai"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
)

type fixedGenerator struct {
	text string
	err  error
}

func (f *fixedGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	return f.text, f.err
}

func newService(gen ai.Generator) *Service {
	return &Service{
		Gen:      genclient.New(gen, time.Second, 0, zerolog.Nop()),
		Glossary: regdata.DefaultGlossary(),
		Log:      zerolog.Nop(),
	}
}

const extractionResponse = `{
  "extracted_features": [
    {"name": "Face Login", "description": "biometric sign-in", "content": "uses facial recognition", "priority": "high", "data_types": ["biometric_data"]},
    {"name": "Usage Analytics", "description": "tracks behavior", "content": "targeted advertising pipeline", "priority": "weird"}
  ]
}`

func TestExtractWithModel(t *testing.T) {
	svc := newService(&fixedGenerator{text: extractionResponse})
	res, err := svc.Extract(context.Background(), "My PRD", "desc", "content")
	require.NoError(t, err)
	assert.Equal(t, compliance.ProducedByModel, res.ProducedVia)
	require.Len(t, res.Features, 2)

	assert.Equal(t, "feature_1", res.Features[0].ID)
	assert.Equal(t, "feature_2", res.Features[1].ID)
	assert.Equal(t, "Face Login", res.Features[0].Name)
	assert.Equal(t, "high", res.Features[0].Priority)
	// unknown priority normalized
	assert.Equal(t, "medium", res.Features[1].Priority)
	// missing data types detected from text
	assert.Contains(t, res.Features[1].DataTypes, "behavioral_data")
}

const markdownPRD = `# User Profiles
Stores user account details.
- collect email address
- allow profile photos

# Location Sharing
Shares GPS location with friends.
- continuous gps tracking
`

func TestExtractFallsBackToRuleBasedSplit(t *testing.T) {
	svc := newService(&fixedGenerator{err: ai.ErrTimeout})
	res, err := svc.Extract(context.Background(), "My PRD", "", markdownPRD)
	require.NoError(t, err)
	assert.Equal(t, compliance.ProducedByFallback, res.ProducedVia)
	require.Len(t, res.Features, 2)

	assert.Equal(t, "User Profiles", res.Features[0].Name)
	assert.Equal(t, []string{"collect email address", "allow profile photos"}, res.Features[0].TechnicalRequirements)
	assert.Equal(t, "Location Sharing", res.Features[1].Name)
	assert.Contains(t, res.Features[1].DataTypes, "location_data")
}

func TestExtractNeverReturnsZeroFeatures(t *testing.T) {
	svc := newService(&fixedGenerator{err: ai.ErrUnavailable})
	res, err := svc.Extract(context.Background(), "Flat PRD", "one blob", "plain prose with no headings or bullets at all")
	require.NoError(t, err)
	require.Len(t, res.Features, 1)
	assert.Equal(t, "feature_1", res.Features[0].ID)
	assert.Equal(t, "Flat PRD", res.Features[0].Name)
	assert.NotEmpty(t, res.Features[0].DataTypes)
}

func TestExtractEmptyContentYieldsSyntheticFeature(t *testing.T) {
	svc := newService(nil)
	res, err := svc.Extract(context.Background(), "Empty PRD", "", "")
	require.NoError(t, err)
	assert.Equal(t, compliance.ProducedByFallback, res.ProducedVia)
	require.Len(t, res.Features, 1)
	assert.Equal(t, "Empty PRD", res.Features[0].Name)
}

func TestExtractWithoutGenerator(t *testing.T) {
	svc := newService(nil)
	res, err := svc.Extract(context.Background(), "PRD", "", markdownPRD)
	require.NoError(t, err)
	assert.Equal(t, compliance.ProducedByFallback, res.ProducedVia)
	assert.Len(t, res.Features, 2)
}

func TestExtractTruncatesContentBeforeGeneration(t *testing.T) {
	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'a'
	}
	var seen string
	gen := &captureGenerator{text: extractionResponse, prompt: &seen}
	svc := newService(gen)
	svc.ContentBudget = 500

	_, err := svc.Extract(context.Background(), "PRD", "", string(long))
	require.NoError(t, err)
	assert.Less(t, len(seen), 3000)
}

func TestExtractCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newService(nil).Extract(ctx, "PRD", "", "content")
	assert.ErrorIs(t, err, context.Canceled)
}

type captureGenerator struct {
	text   string
	prompt *string
}

func (c *captureGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	*c.prompt = prompt
	return c.text, nil
}
