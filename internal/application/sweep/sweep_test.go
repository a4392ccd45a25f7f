package sweep

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
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

// batchGenerator answers the batch prompt with one fixed score per feature
// and counts calls; validation prompts get a rejection so pattern scores
// stand.
type batchGenerator struct {
	score float64
	calls int64
	fail  bool
}

func (g *batchGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	atomic.AddInt64(&g.calls, 1)
	if g.fail {
		return "", ai.ErrTimeout
	}
	if strings.Contains(prompt, "Validate preliminary") {
		// no adjustments, pattern scores stand
		return `{"feature_results": []}`, nil
	}
	if !strings.Contains(prompt, "features for compliance with") {
		return "{}", nil
	}
	var results []map[string]any
	for _, id := range []string{"feature_1", "feature_2"} {
		results = append(results, map[string]any{
			"feature_id":       id,
			"compliance_score": g.score,
			"reasoning":        "model verdict",
			"confidence_score": 0.8,
		})
	}
	out, _ := json.Marshal(map[string]any{"feature_results": results})
	return string(out), nil
}

func testFeatures() []compliance.Feature {
	return []compliance.Feature{
		{ID: "feature_1", Name: "Face Login", Description: "biometric authentication", DataTypes: []string{"biometric_data"}},
		{ID: "feature_2", Name: "Newsletter", Description: "email signup with consent checkbox", DataTypes: []string{"personal_data"}},
	}
}

func newSweep(gen ai.Generator) *Service {
	return &Service{
		Gen:            genclient.New(gen, time.Second, 0, zerolog.Nop()),
		Catalog:        regdata.Default(),
		MaxConcurrency: 4,
		Log:            zerolog.Nop(),
	}
}

func TestRunCoversEveryStateAndFeature(t *testing.T) {
	svc := newSweep(&batchGenerator{fail: true})
	grid, err := svc.Run(context.Background(), testFeatures())
	require.NoError(t, err)

	require.Len(t, grid, 50)
	for code, cells := range grid {
		require.Len(t, cells, 2, "state %s", code)
		for id, cell := range cells {
			assert.Equal(t, code, cell.StateCode)
			assert.Equal(t, compliance.ScoreToRiskLevel(cell.ComplianceScore), cell.RiskLevel, "state %s feature %s", code, id)
		}
	}
}

func TestRunFailedGeneratorUsesFallbackEverywhere(t *testing.T) {
	svc := newSweep(&batchGenerator{fail: true})
	grid, err := svc.Run(context.Background(), testFeatures())
	require.NoError(t, err)

	for _, cells := range grid {
		for _, cell := range cells {
			assert.Equal(t, compliance.ProducedByFallback, cell.ProducedVia)
		}
	}
}

func TestRunHighTierStatesUseBatchResults(t *testing.T) {
	gen := &batchGenerator{score: 0.3}
	svc := newSweep(gen)
	grid, err := svc.Run(context.Background(), testFeatures())
	require.NoError(t, err)

	high := svc.Catalog.ListHighRisk()
	require.NotEmpty(t, high)
	for _, code := range high {
		for _, cell := range grid[code] {
			assert.Equal(t, compliance.ProducedByModel, cell.ProducedVia, "state %s", code)
			assert.Equal(t, 0.3, cell.ComplianceScore)
			assert.Equal(t, compliance.RiskHigh, cell.RiskLevel)
			assert.Equal(t, "model verdict", cell.Reasoning)
		}
	}
}

// selectiveGenerator answers like batchGenerator except that any prompt
// mentioning the marked state gets unparseable text.
type selectiveGenerator struct {
	inner      batchGenerator
	garbageFor string
}

func (g *selectiveGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	if strings.Contains(prompt, g.garbageFor) {
		return "sorry, something went wrong mid-generation", nil
	}
	return g.inner.Generate(ctx, prompt, maxOutputChars)
}

func TestRunBatchFailureIsIsolatedPerState(t *testing.T) {
	svc := newSweep(&selectiveGenerator{inner: batchGenerator{score: 0.3}, garbageFor: "California (CA)"})
	grid, err := svc.Run(context.Background(), testFeatures())
	require.NoError(t, err)

	// the garbled state degrades to pattern matching
	for _, cell := range grid["CA"] {
		assert.Equal(t, compliance.ProducedByFallback, cell.ProducedVia)
	}
	// every other high-tier state keeps its batch verdict
	for _, code := range svc.Catalog.ListHighRisk() {
		if code == "CA" {
			continue
		}
		for _, cell := range grid[code] {
			assert.Equal(t, compliance.ProducedByModel, cell.ProducedVia, "state %s", code)
		}
	}
}

// batchRejectingGenerator errors every batch prompt and records any
// validation prompt it is asked for.
type batchRejectingGenerator struct {
	validationCalls int64
}

func (g *batchRejectingGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	if strings.Contains(prompt, "Validate preliminary") {
		atomic.AddInt64(&g.validationCalls, 1)
		return `{"feature_results": []}`, nil
	}
	return "", ai.ErrTimeout
}

func TestRunBatchFailureSpendsNoValidationCall(t *testing.T) {
	// feature_1 pattern-scores inside the ambiguity band for high-tier
	// states, so validation would fire there if it were still allowed
	// after the failed batch call.
	gen := &batchRejectingGenerator{}
	svc := newSweep(gen)
	grid, err := svc.Run(context.Background(), testFeatures())
	require.NoError(t, err)

	for _, code := range svc.Catalog.ListHighRisk() {
		cell := grid[code]["feature_1"]
		assert.Equal(t, compliance.ProducedByFallback, cell.ProducedVia, "state %s", code)
		assert.True(t, cell.ComplianceScore >= 0.45 && cell.ComplianceScore < 0.55, "state %s score %v", code, cell.ComplianceScore)
	}
	assert.Zero(t, atomic.LoadInt64(&gen.validationCalls))
}

func TestRunWithoutGeneratorIsDeterministic(t *testing.T) {
	svc := newSweep(nil)
	first, err := svc.Run(context.Background(), testFeatures())
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), testFeatures())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunNoFeatures(t *testing.T) {
	_, err := newSweep(nil).Run(context.Background(), nil)
	assert.ErrorIs(t, err, compliance.ErrNoFeatures)
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newSweep(nil).Run(ctx, testFeatures())
	assert.Error(t, err)
}
