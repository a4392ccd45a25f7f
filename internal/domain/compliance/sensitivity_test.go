package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreToSensitivityLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  SensitivityLevel
	}{
		{1.0, SensitivityHigh},
		{0.70, SensitivityHigh},
		{0.69, SensitivityMedium},
		{0.40, SensitivityMedium},
		{0.39, SensitivityLow},
		{0.0, SensitivityLow},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ScoreToSensitivityLevel(c.score), "score %v", c.score)
	}
}

func TestNewRegionalSensitivityScoreClampsAndDerives(t *testing.T) {
	s := NewRegionalSensitivityScore("europe", 1.4, "r", nil, nil, nil, 0.9, false, ProducedByModel)
	assert.Equal(t, 1.0, s.OverallScore)
	assert.Equal(t, SensitivityHigh, s.ScoreLevel)

	s = NewRegionalSensitivityScore("europe", -0.2, "r", nil, nil, nil, 0.6, true, ProducedByFallback)
	assert.Equal(t, 0.0, s.OverallScore)
	assert.Equal(t, SensitivityLow, s.ScoreLevel)
	assert.True(t, s.RequiresHumanReview)
}
