// Package report generates the executive report from a materialized workflow
// state. The narrative comes from the model when available and from a
// deterministic template otherwise; either way Build never fails.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/infra/ai/prompt"
)

const (
	narrativeChars        = 4000
	maxRecommendations    = 15
	minKeyFindings        = 3
	maxKeyFindings        = 6
	maxCriticalInFindings = 2
)

type Service struct {
	Gen *genclient.Caller
	Log zerolog.Logger
}

// Build produces the executive report for a completed workflow. Every field
// except the narrative is computed from the aggregates; the narrative never
// introduces numbers of its own.
func (s *Service) Build(ctx context.Context, ws *compliance.WorkflowState, now time.Time) compliance.ExecutiveReport {
	rep := compliance.ExecutiveReport{
		ReportID:     "rpt_" + uuid.NewString(),
		WorkflowID:   ws.WorkflowID,
		PRDName:      ws.PRDName,
		GeneratedAt:  now,
		KeyFindings:  keyFindings(ws),
		RiskSnapshot: snapshot(ws),
		NextSteps:    nextSteps(ws.OverallRiskLevel),
	}
	rep.Recommendations = capRecommendations(ws.TopRecommendations)

	if text, err := s.Gen.Text(ctx, prompt.ExecutiveSummary(ws), narrativeChars); err == nil && strings.TrimSpace(text) != "" {
		rep.Summary = strings.TrimSpace(text)
		rep.ProducedVia = compliance.ProducedByModel
		return rep
	} else if err != nil {
		s.Log.Warn().Err(err).Str("workflow", ws.WorkflowID).Msg("narrative generation failed, using template summary")
	}
	rep.Summary = templateSummary(ws)
	rep.ProducedVia = compliance.ProducedByFallback
	return rep
}

func snapshot(ws *compliance.WorkflowState) compliance.RiskSnapshot {
	dist := map[string]int{
		string(compliance.RiskLow):    ws.LowRiskFeatures,
		string(compliance.RiskMedium): ws.MediumRiskFeatures,
		string(compliance.RiskHigh):   ws.HighRiskFeatures,
	}
	issues := 0
	for _, st := range ws.StateAnalysisResults {
		if st.NonCompliantFeatures > 0 {
			issues++
		}
	}
	return compliance.RiskSnapshot{
		OverallRiskLevel:        ws.OverallRiskLevel,
		OverallConfidenceScore:  ws.OverallConfidenceScore,
		FeatureRiskDistribution: dist,
		CriticalIssues:          ws.CriticalIssues,
		StatesWithIssues:        issues,
	}
}

// keyFindings always yields between three and six entries, even for an
// all-clear analysis.
func keyFindings(ws *compliance.WorkflowState) []string {
	var out []string
	out = append(out, fmt.Sprintf("Analyzed %d features with an overall %s risk level (confidence %.0f%%).",
		ws.TotalFeaturesAnalyzed, ws.OverallRiskLevel, ws.OverallConfidenceScore*100))

	if ws.HighRiskFeatures > 0 {
		out = append(out, fmt.Sprintf("%d of %d features carry high or critical compliance risk.",
			ws.HighRiskFeatures, ws.TotalFeaturesAnalyzed))
	} else {
		out = append(out, "No features were assessed at high or critical risk.")
	}

	issues, worst := stateIssueStats(ws)
	if issues > 0 {
		out = append(out, fmt.Sprintf("%d of %d jurisdictions show at least one non-compliant feature; %s is the most impacted.",
			issues, len(ws.StateAnalysisResults), worst))
	} else {
		out = append(out, fmt.Sprintf("All %d jurisdictions show full compliance for every analyzed feature.",
			len(ws.StateAnalysisResults)))
	}

	if ca := ws.CulturalAnalysis; ca != nil {
		if ca.RequiresHumanReview {
			out = append(out, fmt.Sprintf("Cultural sensitivity across %d deployment regions is %s and needs regional expert review.",
				ca.RegionsAnalyzed, ca.OverallLevel))
		} else {
			out = append(out, fmt.Sprintf("Cultural sensitivity across %d deployment regions is %s.",
				ca.RegionsAnalyzed, ca.OverallLevel))
		}
	}

	for i, issue := range ws.CriticalIssues {
		if i == maxCriticalInFindings || len(out) == maxKeyFindings {
			break
		}
		out = append(out, "Critical: "+issue)
	}
	if len(out) < minKeyFindings {
		out = append(out, "Analysis completed across the full jurisdiction catalog.")
	}
	if len(out) > maxKeyFindings {
		out = out[:maxKeyFindings]
	}
	return out
}

func stateIssueStats(ws *compliance.WorkflowState) (int, string) {
	issues, worstCount := 0, -1
	worst := ""
	for _, st := range ws.StateAnalysisResults {
		if st.NonCompliantFeatures == 0 {
			continue
		}
		issues++
		if st.NonCompliantFeatures > worstCount ||
			(st.NonCompliantFeatures == worstCount && st.StateName < worst) {
			worstCount = st.NonCompliantFeatures
			worst = st.StateName
		}
	}
	return issues, worst
}

func nextSteps(level compliance.RiskLevel) []string {
	switch level {
	case compliance.RiskCritical:
		return []string{
			"Halt launch planning until critical compliance gaps are remediated",
			"Engage legal counsel immediately for the flagged jurisdictions",
			"Re-run the analysis after remediation to confirm risk reduction",
		}
	case compliance.RiskHigh:
		return []string{
			"Prioritize remediation of high-risk features before launch",
			"Schedule legal review of the non-compliant jurisdictions",
			"Track remediation items to closure and re-analyze",
		}
	case compliance.RiskMedium:
		return []string{
			"Address medium-risk findings in the next development cycle",
			"Document consent and data-handling flows for the flagged features",
			"Monitor regulatory changes in the affected jurisdictions",
		}
	default:
		return []string{
			"Proceed with launch planning; no blocking compliance issues found",
			"Keep privacy documentation current as features evolve",
			"Re-run the analysis when the PRD changes materially",
		}
	}
}

func capRecommendations(recs []string) []string {
	seen := make(map[string]struct{}, len(recs))
	out := make([]string, 0, maxRecommendations)
	for _, r := range recs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		key := strings.ToLower(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

func templateSummary(ws *compliance.WorkflowState) string {
	issues, _ := stateIssueStats(ws)
	var b strings.Builder
	fmt.Fprintf(&b, "The compliance analysis of %q covered %d features across %d jurisdictions and concluded with an overall %s risk level at %.0f%% confidence.\n\n",
		ws.PRDName, ws.TotalFeaturesAnalyzed, len(ws.StateAnalysisResults), ws.OverallRiskLevel, ws.OverallConfidenceScore*100)

	if ws.HighRiskFeatures == 0 && ws.OverallRiskLevel == compliance.RiskLow {
		fmt.Fprintf(&b, "No high-risk features were identified. The product as described is well positioned for a compliant launch, and no jurisdiction raised blocking concerns.\n\n")
	} else {
		fmt.Fprintf(&b, "%d features were assessed at high or critical risk and %d at medium risk. %d jurisdictions show at least one non-compliant feature and require attention before launch.\n\n",
			ws.HighRiskFeatures, ws.MediumRiskFeatures, issues)
	}
	if len(ws.CriticalIssues) > 0 {
		fmt.Fprintf(&b, "The most significant issue is: %s.\n\n", ws.CriticalIssues[0])
	}
	b.WriteString("Recommended actions are listed below in priority order. Re-run the analysis after material changes to the PRD or to the regulatory landscape.")
	return b.String()
}
