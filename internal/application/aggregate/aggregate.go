// Package aggregate folds per-feature chain results and the state sweep grid
// into the workflow-level rollup. It is pure: no generation calls, no IO.
package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/complyradar/complyradar/internal/application/chain"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
)

const maxTopRecommendations = 10

// Input is everything the aggregator consumes, in pipeline order.
type Input struct {
	Features     []compliance.Feature
	ChainResults map[string]chain.Result
	StateGrid    map[string]map[string]compliance.StateComplianceScore
	Catalog      *regdata.Catalog
}

// Output is the rollup merged into WorkflowState by the pipeline.
type Output struct {
	FeatureResults     []compliance.FeatureComplianceResult
	StateSummaries     map[string]compliance.StateSummary
	OverallRiskLevel   compliance.RiskLevel
	OverallConfidence  float64
	HighRiskFeatures   int
	MediumRiskFeatures int
	LowRiskFeatures    int
	CriticalIssues     []string
	TopRecommendations []string
}

// Build assembles the rollup. A missing chain result or sweep cell for any
// feature is a data-integrity violation and fails the whole aggregation.
func Build(in Input) (Output, error) {
	if len(in.Features) == 0 {
		return Output{}, compliance.ErrNoFeatures
	}

	out := Output{
		OverallRiskLevel: compliance.RiskLow,
		StateSummaries:   make(map[string]compliance.StateSummary, in.Catalog.Len()),
	}

	var confidenceSum float64
	var recommendations []string
	for _, f := range in.Features {
		cr, ok := in.ChainResults[f.ID]
		if !ok {
			return Output{}, fmt.Errorf("feature %s: %w", f.ID, compliance.ErrIncompleteSweep)
		}
		states, err := featureStates(f.ID, in.Catalog, in.StateGrid)
		if err != nil {
			return Output{}, err
		}

		var chainTime float64
		for _, st := range cr.Stages {
			chainTime += st.ProcessingTime
		}
		out.FeatureResults = append(out.FeatureResults, compliance.FeatureComplianceResult{
			Feature:               f,
			RiskLevel:             cr.RiskLevel,
			ConfidenceScore:       cr.Confidence,
			ComplianceFlags:       cr.ComplianceFlags,
			StateComplianceScores: states,
			Reasoning:             cr.Reasoning,
			Recommendations:       cr.Recommendations,
			RequiresHumanReview:   cr.RequiresHumanReview,
			ProcessingTime:        chainTime,
		})

		out.OverallRiskLevel = compliance.MaxRisk(out.OverallRiskLevel, cr.RiskLevel)
		confidenceSum += cr.Confidence
		recommendations = append(recommendations, cr.Recommendations...)

		switch cr.RiskLevel {
		case compliance.RiskHigh, compliance.RiskCritical:
			out.HighRiskFeatures++
			out.CriticalIssues = append(out.CriticalIssues,
				fmt.Sprintf("%s: %s risk (%s)", f.Name, cr.RiskLevel, strings.Join(cr.ComplianceFlags, ", ")))
		case compliance.RiskMedium:
			out.MediumRiskFeatures++
		default:
			out.LowRiskFeatures++
		}
	}
	out.OverallConfidence = confidenceSum / float64(len(in.Features))
	out.TopRecommendations = topRecommendations(recommendations)

	for _, code := range in.Catalog.ListAll() {
		rec, _ := in.Catalog.Get(code)
		out.StateSummaries[code] = summarizeState(rec, in.Features, in.StateGrid[code])
	}
	return out, nil
}

// featureStates pulls one feature's column out of the grid, verifying every
// jurisdiction is present.
func featureStates(featureID string, catalog *regdata.Catalog, grid map[string]map[string]compliance.StateComplianceScore) (map[string]compliance.StateComplianceScore, error) {
	out := make(map[string]compliance.StateComplianceScore, catalog.Len())
	for _, code := range catalog.ListAll() {
		cell, ok := grid[code][featureID]
		if !ok {
			return nil, fmt.Errorf("feature %s state %s: %w", featureID, code, compliance.ErrIncompleteSweep)
		}
		out[code] = cell
	}
	return out, nil
}

func summarizeState(rec regdata.JurisdictionRecord, features []compliance.Feature, cells map[string]compliance.StateComplianceScore) compliance.StateSummary {
	summary := compliance.StateSummary{
		StateCode:        rec.Code,
		StateName:        rec.Name,
		OverallRiskLevel: compliance.RiskLow,
		TotalFeatures:    len(features),
	}
	for _, f := range features {
		cell := cells[f.ID]
		summary.OverallRiskLevel = compliance.MaxRisk(summary.OverallRiskLevel, cell.RiskLevel)
		if compliance.IsNonCompliant(cell.ComplianceScore) {
			summary.NonCompliantFeatures++
		}
	}
	if summary.TotalFeatures > 0 {
		summary.ComplianceRate = float64(summary.TotalFeatures-summary.NonCompliantFeatures) / float64(summary.TotalFeatures)
	}
	return summary
}

// topRecommendations dedupes case-insensitively, keeps items that repeat
// across features first, and caps the list.
func topRecommendations(all []string) []string {
	type entry struct {
		text  string
		count int
		first int
	}
	byKey := make(map[string]*entry)
	var order []*entry
	for i, r := range all {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		key := strings.ToLower(r)
		if e, ok := byKey[key]; ok {
			e.count++
			continue
		}
		e := &entry{text: r, count: 1, first: i}
		byKey[key] = e
		order = append(order, e)
	}
	sort.SliceStable(order, func(a, b int) bool {
		if order[a].count != order[b].count {
			return order[a].count > order[b].count
		}
		return order[a].first < order[b].first
	})
	out := make([]string, 0, maxTopRecommendations)
	for _, e := range order {
		out = append(out, e.text)
		if len(out) == maxTopRecommendations {
			break
		}
	}
	return out
}
