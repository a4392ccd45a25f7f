package chain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyradar/complyradar/internal/application/fallback"
	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/domain/ai"
	"github.com/complyradar/complyradar/internal/domain/compliance"
)

// stageGenerator answers each stage prompt with a canned response keyed by a
// marker string in the prompt.
type stageGenerator struct {
	byMarker map[string]string
	err      error
}

func (g *stageGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	for marker, resp := range g.byMarker {
		if strings.Contains(prompt, marker) {
			return resp, nil
		}
	}
	return "{}", nil
}

func testFeature() compliance.Feature {
	return compliance.Feature{
		ID:          "feature_1",
		Name:        "Location Sharing",
		Description: "Shares GPS location",
		Content:     "continuous gps tracking without consent flow",
		DataTypes:   []string{"location_data"},
	}
}

func newChain(gen ai.Generator) *Service {
	return &Service{Gen: genclient.New(gen, time.Second, 0, zerolog.Nop()), Log: zerolog.Nop()}
}

func TestAnalyzeAllStagesFromModel(t *testing.T) {
	gen := &stageGenerator{byMarker: map[string]string{
		"Analyze this feature's data handling": `{"data_types": ["location_data"], "processing_purposes": ["social"], "confidence_score": 0.9}`,
		"Match this feature to the applicable": `{"applicable_regulations": ["GDPR", "CCPA", "gdpr"], "confidence_score": 0.85}`,
		"Assess the compliance risk":           `{"compliance_score": 0.3, "compliance_gaps": ["missing_consent_mechanism"], "confidence_score": 0.8}`,
		"Write the justification":              `{"reasoning": "location without consent is high risk", "recommendations": ["Add consent flow"], "confidence_score": 0.75}`,
		"Validate internal consistency":        `{"consistency_check": "pass", "requires_human_review": true, "final_recommendations": ["add consent flow", "Review retention"], "confidence_score": 0.9}`,
	}}
	svc := newChain(gen)

	res, err := svc.Analyze(context.Background(), testFeature())
	require.NoError(t, err)

	require.Len(t, res.Stages, 5)
	assert.Equal(t, StageNames, stageNamesOf(res.Stages))
	for _, st := range res.Stages {
		assert.Equal(t, compliance.ProducedByModel, st.ProducedVia)
		assert.Equal(t, "feature_1", st.FeatureID)
	}

	assert.Equal(t, compliance.RiskHigh, res.RiskLevel)
	assert.Equal(t, "location without consent is high risk", res.Reasoning)
	// deduped case-insensitively, order preserved
	assert.Equal(t, []string{"GDPR", "CCPA"}, res.ComplianceFlags)
	assert.Equal(t, []string{"Add consent flow", "Review retention"}, res.Recommendations)
	assert.True(t, res.RequiresHumanReview)
	assert.InDelta(t, 0.84, res.Confidence, 0.001)
}

func TestAnalyzeFullFallback(t *testing.T) {
	svc := newChain(&stageGenerator{err: ai.ErrTimeout})

	res, err := svc.Analyze(context.Background(), testFeature())
	require.NoError(t, err)

	require.Len(t, res.Stages, 5)
	for _, st := range res.Stages {
		assert.Equal(t, compliance.ProducedByFallback, st.ProducedVia)
		assert.Equal(t, fallback.Confidence, st.Confidence)
	}
	assert.InDelta(t, fallback.Confidence, res.Confidence, 0.001)
	assert.NotEmpty(t, res.Reasoning)
	assert.NotEmpty(t, res.ComplianceFlags)
	assert.Contains(t, []compliance.RiskLevel{
		compliance.RiskLow, compliance.RiskMedium, compliance.RiskHigh, compliance.RiskCritical,
	}, res.RiskLevel)
}

func TestAnalyzeFallbackIsDeterministic(t *testing.T) {
	svc := newChain(&stageGenerator{err: ai.ErrUnavailable})
	first, err := svc.Analyze(context.Background(), testFeature())
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), testFeature())
	require.NoError(t, err)

	assert.Equal(t, first.RiskLevel, second.RiskLevel)
	assert.Equal(t, first.Reasoning, second.Reasoning)
	assert.Equal(t, first.ComplianceFlags, second.ComplianceFlags)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	svc := newChain(&stageGenerator{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Analyze(ctx, testFeature())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHumanReviewBumpsLowRisk(t *testing.T) {
	gen := &stageGenerator{byMarker: map[string]string{
		"Assess the compliance risk":    `{"compliance_score": 0.9, "confidence_score": 0.9}`,
		"Validate internal consistency": `{"requires_human_review": true, "confidence_score": 0.9}`,
	}}
	res, err := newChain(gen).Analyze(context.Background(), testFeature())
	require.NoError(t, err)
	assert.Equal(t, compliance.RiskMedium, res.RiskLevel)
}

func stageNamesOf(stages []compliance.StageOutput) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = s.StageName
	}
	return out
}
