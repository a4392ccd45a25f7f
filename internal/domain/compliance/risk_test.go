package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreToRiskLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskLevel
	}{
		{0.85, RiskLow},
		{0.80, RiskLow},
		{0.55, RiskMedium},
		{0.50, RiskMedium},
		{0.25, RiskHigh},
		{0.20, RiskHigh},
		{0.05, RiskCritical},
		{0.0, RiskCritical},
		{1.0, RiskLow},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ScoreToRiskLevel(c.score), "score %v", c.score)
	}
}

// The non-compliance cutoff must coincide with the medium/high boundary so
// the two classifications never diverge.
func TestIsNonCompliantMatchesRiskBands(t *testing.T) {
	assert.False(t, IsNonCompliant(0.5))
	assert.True(t, IsNonCompliant(0.49))

	for _, score := range []float64{0.0, 0.19, 0.2, 0.49, 0.5, 0.79, 0.8, 1.0} {
		level := ScoreToRiskLevel(score)
		if IsNonCompliant(score) {
			assert.Contains(t, []RiskLevel{RiskHigh, RiskCritical}, level, "score %v", score)
		} else {
			assert.Contains(t, []RiskLevel{RiskLow, RiskMedium}, level, "score %v", score)
		}
	}
}

func TestMaxRisk(t *testing.T) {
	assert.Equal(t, RiskCritical, MaxRisk(RiskLow, RiskCritical))
	assert.Equal(t, RiskHigh, MaxRisk(RiskHigh, RiskMedium))
	assert.Equal(t, RiskLow, MaxRisk(RiskLow, RiskLow))
}

func TestParseRiskLevelDefaultsToMedium(t *testing.T) {
	assert.Equal(t, RiskHigh, ParseRiskLevel("high"))
	assert.Equal(t, RiskMedium, ParseRiskLevel("severe"))
	assert.Equal(t, RiskMedium, ParseRiskLevel(""))
}

func TestNewStateComplianceScoreClampsAndDerives(t *testing.T) {
	s := NewStateComplianceScore("CA", "California", 1.7, "r", nil, nil, "", ProducedByModel)
	assert.Equal(t, 1.0, s.ComplianceScore)
	assert.Equal(t, RiskLow, s.RiskLevel)

	s = NewStateComplianceScore("CA", "California", -0.3, "r", nil, nil, "", ProducedByFallback)
	assert.Equal(t, 0.0, s.ComplianceScore)
	assert.Equal(t, RiskCritical, s.RiskLevel)
}
