// Package chain runs the five-stage per-feature analysis: content analysis,
// regulation matching, risk assessment, reasoning, quality validation. Each
// stage feeds the next; any stage that the model cannot serve is filled by
// deterministic pattern matching and the chain keeps going.
package chain

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/complyradar/complyradar/internal/application/fallback"
	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/infra/ai/prompt"
)

const (
	StageContentAnalysis    = "content_analysis"
	StageRegulationMatching = "regulation_matching"
	StageRiskAssessment     = "risk_assessment"
	StageReasoning          = "reasoning"
	StageQualityValidation  = "quality_validation"
)

// StageNames lists the stages in execution order.
var StageNames = []string{
	StageContentAnalysis,
	StageRegulationMatching,
	StageRiskAssessment,
	StageReasoning,
	StageQualityValidation,
}

const stageChars = 3000

// Result is the per-feature outcome of the full chain.
type Result struct {
	FeatureID           string
	Stages              []compliance.StageOutput
	RiskLevel           compliance.RiskLevel
	Confidence          float64
	ComplianceFlags     []string
	Reasoning           string
	Recommendations     []string
	RequiresHumanReview bool
}

type Service struct {
	Gen *genclient.Caller
	Log zerolog.Logger
}

// Analyze runs all five stages for one feature. It returns an error only on
// context cancellation; generation failures degrade to fallback outputs.
func (s *Service) Analyze(ctx context.Context, f compliance.Feature) (Result, error) {
	res := Result{FeatureID: f.ID, Stages: make([]compliance.StageOutput, 0, len(StageNames))}

	content, err := s.runStage(ctx, f, StageContentAnalysis, prompt.ContentAnalysis(f), 0.85,
		func() map[string]any { return s.fallbackContentAnalysis(f) })
	if err != nil {
		return Result{}, err
	}
	res.Stages = append(res.Stages, content)

	regs, err := s.runStage(ctx, f, StageRegulationMatching, prompt.RegulationMatching(f, content.Result), 0.80,
		func() map[string]any { return s.fallbackRegulationMatching(f, content.Result) })
	if err != nil {
		return Result{}, err
	}
	res.Stages = append(res.Stages, regs)

	risk, err := s.runStage(ctx, f, StageRiskAssessment, prompt.RiskAssessment(f, content.Result, regs.Result), 0.70,
		func() map[string]any { return s.fallbackRiskAssessment(f, regs.Result) })
	if err != nil {
		return Result{}, err
	}
	res.Stages = append(res.Stages, risk)

	reasoning, err := s.runStage(ctx, f, StageReasoning, prompt.Reasoning(f, risk.Result), 0.75,
		func() map[string]any { return s.fallbackReasoning(f, risk.Result) })
	if err != nil {
		return Result{}, err
	}
	res.Stages = append(res.Stages, reasoning)

	validation, err := s.runStage(ctx, f, StageQualityValidation, prompt.QualityValidation(f, risk.Result, reasoning.Result), 0.85,
		func() map[string]any { return s.fallbackValidation(risk.Result) })
	if err != nil {
		return Result{}, err
	}
	res.Stages = append(res.Stages, validation)

	s.assemble(&res, regs.Result, risk.Result, reasoning.Result, validation.Result)
	return res, nil
}

// runStage executes one stage through the model, or the provided fallback
// when generation fails. Fallback outputs carry a fixed 0.5 confidence.
func (s *Service) runStage(ctx context.Context, f compliance.Feature, name, p string, defConfidence float64, fb func() map[string]any) (compliance.StageOutput, error) {
	if err := ctx.Err(); err != nil {
		return compliance.StageOutput{}, err
	}
	started := time.Now()
	obj, err := s.Gen.JSONObject(ctx, p, stageChars)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return compliance.StageOutput{}, cerr
		}
		s.Log.Warn().Err(err).Str("feature", f.ID).Str("stage", name).Msg("stage degraded to pattern matching")
		return compliance.StageOutput{
			StageName:      name,
			FeatureID:      f.ID,
			Result:         fb(),
			Confidence:     fallback.Confidence,
			ProcessingTime: time.Since(started).Seconds(),
			ProducedVia:    compliance.ProducedByFallback,
		}, nil
	}
	return compliance.StageOutput{
		StageName:      name,
		FeatureID:      f.ID,
		Result:         obj,
		Confidence:     genclient.Clamp01(genclient.Num(obj, "confidence_score", defConfidence), defConfidence),
		ProcessingTime: time.Since(started).Seconds(),
		ProducedVia:    compliance.ProducedByModel,
	}, nil
}

func (s *Service) assemble(res *Result, regs, risk, reasoning, validation map[string]any) {
	if score := genclient.Num(risk, "compliance_score", -1); score >= 0 && score <= 1 {
		res.RiskLevel = compliance.ScoreToRiskLevel(score)
	} else {
		res.RiskLevel = compliance.ParseRiskLevel(genclient.Str(risk, "risk_level"))
	}
	res.ComplianceFlags = dedupe(genclient.Strings(regs, "applicable_regulations"))
	res.Reasoning = genclient.Str(reasoning, "detailed_reasoning")
	if res.Reasoning == "" {
		res.Reasoning = genclient.Str(reasoning, "reasoning")
	}
	var recs []string
	recs = append(recs, genclient.Strings(reasoning, "recommendations")...)
	recs = append(recs, genclient.Strings(risk, "mitigation_recommendations")...)
	recs = append(recs, genclient.Strings(validation, "final_recommendations")...)
	res.Recommendations = dedupe(recs)
	res.RequiresHumanReview = genclient.Bool(validation, "requires_human_review")

	var sum float64
	for _, st := range res.Stages {
		sum += st.Confidence
	}
	res.Confidence = sum / float64(len(res.Stages))
	if res.RequiresHumanReview && res.RiskLevel == compliance.RiskLow {
		res.RiskLevel = compliance.RiskMedium
	}
}

func (s *Service) fallbackContentAnalysis(f compliance.Feature) map[string]any {
	text := f.Name + " " + f.Description + " " + f.Content
	return map[string]any{
		"data_types":          fallback.DetectDataTypes(text),
		"collects_data":       true,
		"has_consent_signals": fallback.HasConsentSignals(text),
		"summary":             "Pattern-matched analysis of " + f.Name,
	}
}

func (s *Service) fallbackRegulationMatching(f compliance.Feature, content map[string]any) map[string]any {
	dataTypes := genclient.Strings(content, "data_types")
	if len(dataTypes) == 0 {
		dataTypes = fallback.DetectDataTypes(f.Name + " " + f.Description + " " + f.Content)
	}
	return map[string]any{
		"applicable_regulations": fallback.MatchRegimes(dataTypes),
		"match_basis":            "keyword",
	}
}

func (s *Service) fallbackRiskAssessment(f compliance.Feature, regs map[string]any) map[string]any {
	score := fallback.FeatureRiskScore(f)
	level := compliance.ScoreToRiskLevel(score)
	recs := []string{"Review data handling practices for " + f.Name}
	if len(genclient.Strings(regs, "applicable_regulations")) > 0 {
		recs = append(recs, "Confirm coverage of the matched regulations with counsel")
	}
	return map[string]any{
		"risk_level":                 string(level),
		"compliance_score":           score,
		"mitigation_recommendations": recs,
	}
}

func (s *Service) fallbackReasoning(f compliance.Feature, risk map[string]any) map[string]any {
	level := genclient.Str(risk, "risk_level")
	if level == "" {
		level = string(compliance.RiskMedium)
	}
	var b strings.Builder
	b.WriteString("Feature ")
	b.WriteString(f.Name)
	b.WriteString(" was assessed as ")
	b.WriteString(level)
	b.WriteString(" risk based on detected data types")
	if len(f.DataTypes) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(f.DataTypes, ", "))
		b.WriteString(")")
	}
	b.WriteString(". Model reasoning was unavailable; this explanation is derived from keyword patterns.")
	return map[string]any{"detailed_reasoning": b.String()}
}

func (s *Service) fallbackValidation(risk map[string]any) map[string]any {
	level := compliance.ParseRiskLevel(genclient.Str(risk, "risk_level"))
	return map[string]any{
		"consistency_check":     "pass",
		"requires_human_review": level == compliance.RiskHigh || level == compliance.RiskCritical,
		"final_recommendations": []any{},
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
