// Package culture analyzes a run's features for cultural sensitivity across
// deployment regions. Each region gets one combined call, mirroring the
// jurisdiction sweep; when generation is unavailable a rule-based keyword
// assessment stands in, flagged for human review.
package culture

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
	"github.com/complyradar/complyradar/internal/infra/ai/prompt"
)

const (
	regionChars        = 4000
	fallbackConfidence = 0.6
	maxIssues          = 10
	maxRecommendations = 10
)

// factorSignals maps a factor label to the keywords whose presence in the
// feature text counts as the factor being addressed.
var factorSignals = []struct {
	label          string
	keywords       []string
	issue          string
	recommendation string
}{
	{
		label:          "Language and localization",
		keywords:       []string{"language", "translation", "localization", "locale"},
		issue:          "No language localization mentioned",
		recommendation: "Consider adding multi-language support",
	},
	{
		label:          "Privacy and data protection",
		keywords:       []string{"privacy", "data protection", "gdpr", "consent"},
		issue:          "Privacy considerations not addressed",
		recommendation: "Review privacy implications for the region",
	},
	{
		label:          "Accessibility and inclusion",
		keywords:       []string{"accessibility", "disability", "inclusive", "screen reader"},
		issue:          "Accessibility not considered",
		recommendation: "Implement accessibility features",
	},
	{
		label:          "Religious considerations",
		keywords:       []string{"religion", "religious", "prayer", "halal", "kosher"},
		issue:          "Religious factors not addressed",
		recommendation: "Consider religious requirements for the region",
	},
	{
		label:          "Gender considerations",
		keywords:       []string{"gender", "equality", "pronoun"},
		issue:          "Gender considerations not addressed",
		recommendation: "Review gender-related implications",
	},
}

type Service struct {
	Gen            *genclient.Caller
	Regions        *regdata.RegionCatalog
	MaxConcurrency int
	Log            zerolog.Logger
}

// Analyze scores every deployment region and rolls the results up. Like the
// sweep it returns an error only on cancellation; generation failures
// degrade to the rule-based path.
func (s *Service) Analyze(ctx context.Context, features []compliance.Feature) (compliance.CulturalAnalysis, error) {
	if len(features) == 0 {
		return compliance.CulturalAnalysis{}, compliance.ErrNoFeatures
	}
	codes := s.Regions.ListAll()

	g, gctx := errgroup.WithContext(ctx)
	limit := s.MaxConcurrency
	if limit <= 0 {
		limit = 4
	}
	g.SetLimit(limit)

	scores := make([]compliance.RegionalSensitivityScore, len(codes))
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = s.analyzeRegion(gctx, features, s.Regions.Get(code))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return compliance.CulturalAnalysis{}, err
	}
	return rollup(scores, len(features)), nil
}

func (s *Service) analyzeRegion(ctx context.Context, features []compliance.Feature, profile regdata.RegionProfile) compliance.RegionalSensitivityScore {
	if s.Gen.Available() {
		obj, err := s.Gen.JSONObject(ctx, prompt.CulturalSensitivity(features, profile), regionChars)
		if err == nil {
			return compliance.NewRegionalSensitivityScore(
				profile.Code,
				genclient.Clamp01(genclient.Num(obj, "overall_score", 0.5), 0.5),
				genclient.Str(obj, "reasoning"),
				genclient.Strings(obj, "cultural_factors"),
				genclient.Strings(obj, "potential_issues"),
				genclient.Strings(obj, "recommendations"),
				genclient.Clamp01(genclient.Num(obj, "confidence_score", 0.7), 0.7),
				genclient.Bool(obj, "requires_human_review"),
				compliance.ProducedByModel,
			)
		}
		s.Log.Debug().Err(err).Str("region", profile.Code).Msg("cultural analysis degraded to rule-based scoring")
	}
	return RuleBasedRegionScore(features, profile)
}

// RuleBasedRegionScore is the deterministic cultural assessment: a neutral
// base score raised for each factor category the feature text addresses.
// Idempotent for a given input, and always flagged for human review.
func RuleBasedRegionScore(features []compliance.Feature, profile regdata.RegionProfile) compliance.RegionalSensitivityScore {
	var b strings.Builder
	for _, f := range features {
		b.WriteString(f.Name)
		b.WriteByte(' ')
		b.WriteString(f.Description)
		b.WriteByte(' ')
		b.WriteString(f.Content)
		b.WriteByte(' ')
	}
	text := strings.ToLower(b.String())

	score := 0.5
	var addressed, issues, recs []string
	for _, fs := range factorSignals {
		found := false
		for _, kw := range fs.keywords {
			if strings.Contains(text, kw) {
				found = true
				break
			}
		}
		if found {
			addressed = append(addressed, fs.label)
			score += 0.1
		} else {
			issues = append(issues, fs.issue)
			recs = append(recs, fs.recommendation)
		}
	}

	reasoning := fmt.Sprintf(
		"Rule-based cultural assessment for %s: %d of %d factor categories addressed (%s). Review by regional experts is recommended.",
		profile.Name, len(addressed), len(factorSignals), strings.Join(addressed, ", "),
	)
	if len(addressed) == 0 {
		reasoning = fmt.Sprintf(
			"Rule-based cultural assessment for %s: no factor categories addressed. Review by regional experts is recommended.",
			profile.Name,
		)
	}
	return compliance.NewRegionalSensitivityScore(
		profile.Code, score, reasoning, addressed, issues, recs,
		fallbackConfidence, true, compliance.ProducedByFallback,
	)
}

// rollup folds the per-region scores into the workflow-level summary.
func rollup(scores []compliance.RegionalSensitivityScore, featureCount int) compliance.CulturalAnalysis {
	out := compliance.CulturalAnalysis{
		RegionalScores:        make(map[string]compliance.RegionalSensitivityScore, len(scores)),
		TotalFeaturesAnalyzed: featureCount,
		RegionsAnalyzed:       len(scores),
	}
	var sum float64
	var issues, recs []string
	for _, sc := range scores {
		out.RegionalScores[sc.Region] = sc
		sum += sc.OverallScore
		issues = append(issues, sc.PotentialIssues...)
		recs = append(recs, sc.Recommendations...)
		if sc.RequiresHumanReview {
			out.RequiresHumanReview = true
		}
	}
	if len(scores) > 0 {
		out.OverallAverageScore = sum / float64(len(scores))
	}
	out.OverallLevel = compliance.ScoreToSensitivityLevel(out.OverallAverageScore)
	out.KeyCulturalIssues = dedupeCap(issues, maxIssues)
	out.Recommendations = dedupeCap(recs, maxRecommendations)
	return out
}

// dedupeCap keeps the most frequent entries first, then input order.
func dedupeCap(items []string, max int) []string {
	type entry struct {
		text  string
		count int
		first int
	}
	byKey := make(map[string]*entry)
	var order []*entry
	for i, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if e, ok := byKey[key]; ok {
			e.count++
			continue
		}
		e := &entry{text: it, count: 1, first: i}
		byKey[key] = e
		order = append(order, e)
	}
	sort.SliceStable(order, func(a, b int) bool {
		if order[a].count != order[b].count {
			return order[a].count > order[b].count
		}
		return order[a].first < order[b].first
	})
	out := make([]string, 0, max)
	for _, e := range order {
		out = append(out, e.text)
		if len(out) == max {
			break
		}
	}
	return out
}
