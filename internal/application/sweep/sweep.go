// Package sweep runs the 50-state compliance pass. High-tier jurisdictions
// get one batched model call; all others are scored by pattern matching with
// a single bounded validation call when the score lands in the ambiguity
// band. A failed batch call degrades that state to per-feature pattern
// matching and is never retried as a batch.
package sweep

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/complyradar/complyradar/internal/application/fallback"
	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
	"github.com/complyradar/complyradar/internal/infra/ai/prompt"
)

const (
	batchChars      = 8000
	validationChars = 3000
)

type Service struct {
	Gen            *genclient.Caller
	Catalog        *regdata.Catalog
	MaxConcurrency int
	Log            zerolog.Logger
}

// Run scores every feature against every jurisdiction in the catalog. The
// result always has one cell per (state, feature) pair; cells that could not
// be computed carry the neutral insufficient-data score.
func (s *Service) Run(ctx context.Context, features []compliance.Feature) (map[string]map[string]compliance.StateComplianceScore, error) {
	if len(features) == 0 {
		return nil, compliance.ErrNoFeatures
	}
	codes := s.Catalog.ListAll()

	g, gctx := errgroup.WithContext(ctx)
	limit := s.MaxConcurrency
	if limit <= 0 {
		limit = 8
	}
	g.SetLimit(limit)

	perState := make([]map[string]compliance.StateComplianceScore, len(codes))
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, ok := s.Catalog.Get(code)
			if !ok {
				return fmt.Errorf("unknown jurisdiction %q", code)
			}
			perState[i] = s.analyzeState(gctx, features, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]map[string]compliance.StateComplianceScore, len(codes))
	for i, code := range codes {
		out[code] = perState[i]
	}
	return out, nil
}

func (s *Service) analyzeState(ctx context.Context, features []compliance.Feature, rec regdata.JurisdictionRecord) map[string]compliance.StateComplianceScore {
	if rec.RiskTier == regdata.TierHigh && s.Gen.Available() {
		if scores, ok := s.batchState(ctx, features, rec); ok {
			return scores
		}
		s.Log.Warn().Str("state", rec.Code).Msg("batch state analysis failed, falling back to pattern matching")
		// the failed batch call already spent this state's generation
		// budget; the degraded pass must not issue another call
		return s.patternState(ctx, features, rec, false)
	}
	return s.patternState(ctx, features, rec, true)
}

// batchState issues the single combined call for a high-tier jurisdiction.
// A missing or unmatched feature entry gets the neutral default cell.
func (s *Service) batchState(ctx context.Context, features []compliance.Feature, rec regdata.JurisdictionRecord) (map[string]compliance.StateComplianceScore, bool) {
	obj, err := s.Gen.JSONObject(ctx, prompt.StateBatch(features, rec), batchChars)
	if err != nil {
		return nil, false
	}
	results := genclient.Objects(obj, "feature_results")
	if len(results) == 0 {
		return nil, false
	}

	byID := make(map[string]map[string]any, len(results))
	for _, r := range results {
		if id := genclient.Str(r, "feature_id"); id != "" {
			byID[id] = r
		}
	}

	out := make(map[string]compliance.StateComplianceScore, len(features))
	for i, f := range features {
		r, ok := byID[f.ID]
		if !ok && i < len(results) && genclient.Str(results[i], "feature_id") == "" {
			// Positional match when the model omitted ids.
			r, ok = results[i], true
		}
		if !ok {
			out[f.ID] = defaultCell(rec)
			continue
		}
		score := genclient.Clamp01(genclient.Num(r, "compliance_score", 0.5), 0.5)
		out[f.ID] = compliance.NewStateComplianceScore(
			rec.Code, rec.Name, score,
			genclient.Str(r, "reasoning"),
			genclient.Strings(r, "non_compliant_regulations"),
			genclient.Strings(r, "required_actions"),
			"",
			compliance.ProducedByModel,
		)
	}
	return out, true
}

// patternState scores deterministically, then spends at most one validation
// call per jurisdiction when any score is ambiguous. validate=false disables
// that call entirely for states whose batch call already failed.
func (s *Service) patternState(ctx context.Context, features []compliance.Feature, rec regdata.JurisdictionRecord, validate bool) map[string]compliance.StateComplianceScore {
	out := make(map[string]compliance.StateComplianceScore, len(features))
	prelim := make(map[string]float64, len(features))
	ambiguous := false
	for _, f := range features {
		sr := fallback.AnalyzeState(f, rec)
		prelim[f.ID] = sr.Score
		if fallback.Ambiguous(sr.Score) {
			ambiguous = true
		}
		out[f.ID] = compliance.NewStateComplianceScore(
			rec.Code, rec.Name, sr.Score, sr.Reasoning, sr.NonCompliant, sr.RequiredActions, "", compliance.ProducedByFallback,
		)
	}

	if !validate || !ambiguous || !s.Gen.Available() || ctx.Err() != nil {
		return out
	}
	obj, err := s.Gen.JSONObject(ctx, prompt.StateValidation(features, rec, prelim), validationChars)
	if err != nil {
		s.Log.Debug().Err(err).Str("state", rec.Code).Msg("validation call failed, keeping pattern scores")
		return out
	}
	for _, r := range genclient.Objects(obj, "feature_results") {
		id := genclient.Str(r, "feature_id")
		cell, ok := out[id]
		if !ok {
			continue
		}
		score := genclient.Clamp01(genclient.Num(r, "compliance_score", prelim[id]), prelim[id])
		reasoning := strings.TrimSpace(genclient.Str(r, "reasoning"))
		if reasoning == "" {
			reasoning = cell.Reasoning
		}
		out[id] = compliance.NewStateComplianceScore(
			rec.Code, rec.Name, score, reasoning, cell.NonCompliantRegulations, cell.RequiredActions,
			"validated", compliance.ProducedByModel,
		)
	}
	return out
}

func defaultCell(rec regdata.JurisdictionRecord) compliance.StateComplianceScore {
	d := fallback.DefaultStateScore()
	return compliance.NewStateComplianceScore(
		rec.Code, rec.Name, d.Score, d.Reasoning, nil, d.RequiredActions, "", compliance.ProducedByFallback,
	)
}
