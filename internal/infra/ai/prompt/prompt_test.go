package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("", 5))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	// "héllo wörld" has two-byte runes; cutting mid-rune must back up
	s := "héllo wörld"
	for n := 1; n < len(s); n++ {
		out := Truncate(s, n)
		assert.True(t, utf8.ValidString(out), "n=%d out=%q", n, out)
		assert.LessOrEqual(t, len(strings.TrimSuffix(out, "...")), n)
	}
	assert.Equal(t, "h...", Truncate("héllo", 2))
}

func TestCapList(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"a", "b"}, CapList(in, 2))
	assert.Equal(t, in, CapList(in, 10))
}

func TestExtractionIncludesGlossary(t *testing.T) {
	p := Extraction("PRD", "desc", "content", []string{"GDPR: EU data protection"})
	assert.Contains(t, p, "GDPR: EU data protection")
	assert.Contains(t, p, "extracted_features")
}

func TestStagePromptsBoundTheirInputs(t *testing.T) {
	f := compliance.Feature{
		ID:          "feature_1",
		Name:        "Big Feature",
		Description: strings.Repeat("d", 1000),
	}
	p := ContentAnalysis(f)
	// description capped, not embedded whole
	assert.NotContains(t, p, strings.Repeat("d", DescriptionLimit+1))

	prior := map[string]any{"huge": strings.Repeat("x", 5000)}
	p = RegulationMatching(f, prior)
	assert.NotContains(t, p, strings.Repeat("x", 700))
}

func TestStateBatchListsAllFeatures(t *testing.T) {
	rec, ok := regdata.Default().Get("CA")
	require.True(t, ok)
	features := []compliance.Feature{
		{ID: "feature_1", Name: "A"},
		{ID: "feature_2", Name: "B"},
	}
	p := StateBatch(features, rec)
	assert.Contains(t, p, "feature_1")
	assert.Contains(t, p, "feature_2")
	assert.Contains(t, p, "California")
	assert.Contains(t, p, "feature_results")
}

func TestStateValidationEmbedsScores(t *testing.T) {
	rec, _ := regdata.Default().Get("OH")
	features := []compliance.Feature{{ID: "feature_1", Name: "A"}}
	p := StateValidation(features, rec, map[string]float64{"feature_1": 0.47})
	assert.Contains(t, p, "0.47")
	assert.Contains(t, p, "feature_1")
}

func TestExecutiveSummaryUsesAggregates(t *testing.T) {
	ws := &compliance.WorkflowState{
		PRDName:                "My PRD",
		OverallRiskLevel:       compliance.RiskMedium,
		OverallConfidenceScore: 0.8,
		TotalFeaturesAnalyzed:  4,
		StateAnalysisResults: map[string]compliance.StateSummary{
			"CA": {NonCompliantFeatures: 1},
			"OH": {},
		},
	}
	p := ExecutiveSummary(ws)
	assert.Contains(t, p, "My PRD")
	assert.Contains(t, p, "medium")
	assert.Contains(t, p, "1 of 2")
}
