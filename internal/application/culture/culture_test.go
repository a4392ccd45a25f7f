package culture

import (
	"context"
	"encoding/json"
	"strings"
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

// regionGenerator answers every cultural prompt with one fixed verdict.
type regionGenerator struct {
	score float64
	fail  bool
}

func (g *regionGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	if g.fail {
		return "", ai.ErrTimeout
	}
	if !strings.Contains(prompt, "cultural sensitivity") {
		return "{}", nil
	}
	out, _ := json.Marshal(map[string]any{
		"overall_score":         g.score,
		"reasoning":             "model assessment",
		"cultural_factors":      []string{"privacy"},
		"potential_issues":      []string{"no localization plan"},
		"recommendations":       []string{"add localization"},
		"confidence_score":      0.9,
		"requires_human_review": false,
	})
	return string(out), nil
}

func newCulture(gen ai.Generator) *Service {
	return &Service{
		Gen:            genclient.New(gen, time.Second, 0, zerolog.Nop()),
		Regions:        regdata.DefaultRegions(),
		MaxConcurrency: 4,
		Log:            zerolog.Nop(),
	}
}

func testFeatures() []compliance.Feature {
	return []compliance.Feature{
		{ID: "feature_1", Name: "Face Login", Description: "biometric authentication"},
		{ID: "feature_2", Name: "Newsletter", Description: "email signup with consent checkbox"},
	}
}

func TestAnalyzeCoversEveryRegion(t *testing.T) {
	svc := newCulture(&regionGenerator{score: 0.8})
	ca, err := svc.Analyze(context.Background(), testFeatures())
	require.NoError(t, err)

	assert.Equal(t, 7, ca.RegionsAnalyzed)
	assert.Len(t, ca.RegionalScores, 7)
	assert.Equal(t, 2, ca.TotalFeaturesAnalyzed)
	for code, sc := range ca.RegionalScores {
		assert.Equal(t, code, sc.Region)
		assert.Equal(t, compliance.ProducedByModel, sc.ProducedVia)
		assert.Equal(t, 0.8, sc.OverallScore)
		assert.Equal(t, compliance.SensitivityHigh, sc.ScoreLevel)
	}
	assert.Equal(t, compliance.SensitivityHigh, ca.OverallLevel)
	assert.False(t, ca.RequiresHumanReview)
}

func TestAnalyzeFailedGeneratorUsesRuleBasedEverywhere(t *testing.T) {
	svc := newCulture(&regionGenerator{fail: true})
	ca, err := svc.Analyze(context.Background(), testFeatures())
	require.NoError(t, err)

	for _, sc := range ca.RegionalScores {
		assert.Equal(t, compliance.ProducedByFallback, sc.ProducedVia)
		assert.True(t, sc.RequiresHumanReview)
		assert.Equal(t, fallbackConfidence, sc.ConfidenceScore)
	}
	assert.True(t, ca.RequiresHumanReview)
	assert.NotEmpty(t, ca.KeyCulturalIssues)
	assert.NotEmpty(t, ca.Recommendations)
}

func TestAnalyzeWithoutGeneratorIsDeterministic(t *testing.T) {
	svc := newCulture(nil)
	first, err := svc.Analyze(context.Background(), testFeatures())
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), testFeatures())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeNoFeatures(t *testing.T) {
	_, err := newCulture(nil).Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, compliance.ErrNoFeatures)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newCulture(nil).Analyze(ctx, testFeatures())
	assert.Error(t, err)
}

func TestRuleBasedScoreRewardsAddressedFactors(t *testing.T) {
	regions := regdata.DefaultRegions()
	bare := []compliance.Feature{{Name: "Widget", Description: "a plain widget"}}
	aware := []compliance.Feature{{
		Name:        "Onboarding",
		Description: "localization with per-language consent screens, accessibility labels, and gender-neutral copy",
	}}

	low := RuleBasedRegionScore(bare, regions.Get("europe"))
	high := RuleBasedRegionScore(aware, regions.Get("europe"))

	assert.Equal(t, 0.5, low.OverallScore)
	assert.Len(t, low.PotentialIssues, 5)
	assert.Len(t, low.Recommendations, 5)

	assert.Greater(t, high.OverallScore, low.OverallScore)
	assert.Contains(t, high.CulturalFactors, "Language and localization")
	assert.Contains(t, high.CulturalFactors, "Privacy and data protection")
	assert.Contains(t, high.CulturalFactors, "Accessibility and inclusion")
	assert.Contains(t, high.CulturalFactors, "Gender considerations")
	assert.NotContains(t, high.CulturalFactors, "Religious considerations")
	assert.True(t, high.RequiresHumanReview)
}

func TestDedupeCapPrefersFrequentEntries(t *testing.T) {
	in := []string{"b", "a", "b", "c", "B", ""}
	out := dedupeCap(in, 2)
	assert.Equal(t, []string{"b", "a"}, out)
}
