// Package prompt builds the bounded prompts sent to the generation client.
// Every free-text field is truncated to a fixed cap before it reaches a
// prompt so call cost stays bounded regardless of input size.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
)

// Field caps. Truncation changes internal content length only, never record
// counts.
const (
	DescriptionLimit = 200
	ContentLimit     = 1500
	RequirementLimit = 3
)

// Truncate cuts s to at most n bytes, appending an ellipsis marker when
// anything was dropped. The cut backs up to a rune boundary so multi-byte
// characters are never split.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// CapList keeps at most n entries of a string list.
func CapList(items []string, n int) []string {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}

const jsonContract = `Respond ONLY with one valid JSON object. No markdown, no code fences, no commentary. Use double quotes, lowercase true/false, and no trailing commas.`

// featureHeader renders the bounded feature block shared by the chain
// prompts.
func featureHeader(f compliance.Feature) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Feature: %s\n", f.Name)
	fmt.Fprintf(&b, "Description: %s\n", Truncate(f.Description, DescriptionLimit))
	if reqs := CapList(f.TechnicalRequirements, RequirementLimit); len(reqs) > 0 {
		fmt.Fprintf(&b, "Technical requirements: %s\n", strings.Join(reqs, "; "))
	}
	if len(f.DataTypes) > 0 {
		fmt.Fprintf(&b, "Data types: %s\n", strings.Join(f.DataTypes, ", "))
	}
	return b.String()
}

// Extraction builds the PRD feature-extraction prompt. Glossary definitions
// matched against the PRD text are appended as context.
func Extraction(name, description, content string, glossary []string) string {
	var b strings.Builder
	b.WriteString("Extract the distinct product features from this PRD for compliance analysis.\n\n")
	fmt.Fprintf(&b, "Name: %s\nDescription: %s\nContent: %s\n", name, Truncate(description, DescriptionLimit), content)
	if len(glossary) > 0 {
		b.WriteString("\nRelevant definitions:\n")
		for _, g := range glossary {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}
	b.WriteString(`
A feature is a specific capability, data processing operation, or business process.
Return JSON:
{
  "extracted_features": [
    {
      "name": "Feature Name",
      "description": "what it does",
      "content": "relevant PRD text",
      "priority": "high|medium|low",
      "data_types": ["location_data"],
      "technical_requirements": ["req1"]
    }
  ]
}
`)
	b.WriteString(jsonContract)
	return b.String()
}

// ContentAnalysis builds the stage-1 prompt: data types, processing
// purposes, and flows.
func ContentAnalysis(f compliance.Feature) string {
	return featureHeader(f) + `
Analyze this feature's data handling. Return JSON:
{
  "data_types": ["personal_data", "location_data"],
  "processing_purposes": ["analytics"],
  "data_flows": ["user_input", "cloud_storage"],
  "confidence_score": 0.85
}
` + jsonContract
}

// RegulationMatching builds the stage-2 prompt against the fixed global
// regime vocabulary.
func RegulationMatching(f compliance.Feature, contentAnalysis map[string]any) string {
	prior, _ := json.Marshal(contentAnalysis)
	return featureHeader(f) + fmt.Sprintf(`
Content analysis: %s

Match this feature to the applicable regimes. Vocabulary:
- GDPR (EU): personal data processing, consent, data subject rights
- CCPA (California): consumer privacy, data sales, access rights
- PIPL (China): personal information, localization, cross-border transfer
- LGPD (Brazil): data protection, legal basis, subject rights

Return JSON:
{
  "applicable_regulations": ["GDPR"],
  "regulation_reasons": {"GDPR": "why"},
  "compliance_priority": "high|medium|low",
  "confidence_score": 0.8
}
%s`, Truncate(string(prior), 600), jsonContract)
}

// RiskAssessment builds the stage-3 prompt.
func RiskAssessment(f compliance.Feature, contentAnalysis, regulationMatching map[string]any) string {
	ca, _ := json.Marshal(contentAnalysis)
	rm, _ := json.Marshal(regulationMatching)
	return featureHeader(f) + fmt.Sprintf(`
Content analysis: %s
Regulation matching: %s

Assess the compliance risk. compliance_score is 0.0-1.0 where 1.0 is fully compliant.
Return JSON:
{
  "compliance_score": 0.7,
  "compliance_gaps": ["missing_consent_mechanism"],
  "confidence_score": 0.75
}
%s`, Truncate(string(ca), 600), Truncate(string(rm), 600), jsonContract)
}

// Reasoning builds the stage-4 prompt: human-readable justification plus an
// ordered recommendation list.
func Reasoning(f compliance.Feature, riskAssessment map[string]any) string {
	ra, _ := json.Marshal(riskAssessment)
	return featureHeader(f) + fmt.Sprintf(`
Risk assessment: %s

Write the justification and recommendations. Return JSON:
{
  "reasoning": "clear business-friendly explanation",
  "recommendations": ["ordered, specific actions"],
  "confidence_score": 0.8
}
%s`, Truncate(string(ra), 600), jsonContract)
}

// QualityValidation builds the stage-5 prompt: internal consistency check
// and final confidence.
func QualityValidation(f compliance.Feature, riskAssessment, reasoning map[string]any) string {
	ra, _ := json.Marshal(riskAssessment)
	re, _ := json.Marshal(reasoning)
	return featureHeader(f) + fmt.Sprintf(`
Risk assessment: %s
Reasoning: %s

Validate internal consistency (risk level must align with the gaps found).
Return JSON:
{
  "consistency_check": "pass|warning|fail",
  "confidence_adjustment": 0.85,
  "requires_human_review": false,
  "final_recommendations": ["..."]
}
%s`, Truncate(string(ra), 600), Truncate(string(re), 400), jsonContract)
}

// featureSummary is the bounded per-feature block embedded in the batch
// sweep prompt.
type featureSummary struct {
	FeatureID             string   `json:"feature_id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	DataTypes             []string `json:"data_types,omitempty"`
	TechnicalRequirements []string `json:"technical_requirements,omitempty"`
}

// StateBatch builds the single combined request analyzing all features
// against one jurisdiction.
func StateBatch(features []compliance.Feature, rec regdata.JurisdictionRecord) string {
	summaries := make([]featureSummary, 0, len(features))
	for _, f := range features {
		summaries = append(summaries, featureSummary{
			FeatureID:             f.ID,
			Name:                  f.Name,
			Description:           Truncate(f.Description, DescriptionLimit),
			DataTypes:             f.DataTypes,
			TechnicalRequirements: CapList(f.TechnicalRequirements, RequirementLimit),
		})
	}
	fjson, _ := json.MarshalIndent(summaries, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze %d features for compliance with %s (%s) regulations.\n\n", len(features), rec.Name, rec.Code)
	fmt.Fprintf(&b, "Regulations: %s\n", strings.Join(rec.Regulations, ", "))
	fmt.Fprintf(&b, "Enforcement level: %s\n", rec.EnforcementLevel)
	fmt.Fprintf(&b, "Key requirements: %s\n", strings.Join(rec.KeyRequirements, "; "))
	fmt.Fprintf(&b, "Penalties: %s\n\n", strings.Join(rec.Penalties, "; "))
	fmt.Fprintf(&b, "Features:\n%s\n", string(fjson))
	b.WriteString(`
For every feature return one result, same order as the input. compliance_score is 0.0-1.0 where 1.0 is fully compliant.
Return JSON:
{
  "feature_results": [
    {
      "feature_id": "feature_1",
      "compliance_score": 0.3,
      "non_compliant_regulations": ["regulation name"],
      "required_actions": ["specific action"],
      "reasoning": "why, referencing the state requirements",
      "confidence_score": 0.8
    }
  ]
}
`)
	b.WriteString(jsonContract)
	return b.String()
}

// StateValidation builds the single bounded validation call used when
// pattern matching signals ambiguity for a jurisdiction.
func StateValidation(features []compliance.Feature, rec regdata.JurisdictionRecord, scores map[string]float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Validate preliminary compliance scores against %s (%s).\n", rec.Name, rec.Code)
	fmt.Fprintf(&b, "Regulations: %s\n\nPreliminary scores:\n", strings.Join(rec.Regulations, ", "))
	for _, f := range features {
		fmt.Fprintf(&b, "- %s (%s): %.2f -- %s\n", f.ID, f.Name, scores[f.ID], Truncate(f.Description, DescriptionLimit))
	}
	b.WriteString(`
Adjust only scores that are clearly wrong. Return JSON:
{
  "feature_results": [
    {"feature_id": "feature_1", "compliance_score": 0.55, "reasoning": "short justification"}
  ]
}
`)
	b.WriteString(jsonContract)
	return b.String()
}

// CulturalSensitivity builds the per-region cultural analysis prompt
// covering all of a run's features at once.
func CulturalSensitivity(features []compliance.Feature, profile regdata.RegionProfile) string {
	factors, _ := json.MarshalIndent(profile.Factors, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Assess the cultural sensitivity of %d product features for deployment in %s.\n\n", len(features), profile.Name)
	fmt.Fprintf(&b, "Regional cultural factors to consider:\n%s\n\nFeatures:\n", string(factors))
	for _, f := range features {
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, Truncate(f.Description, DescriptionLimit))
	}
	b.WriteString(`
overall_score is 0.0-1.0 where 1.0 means the features handle this region's norms well.
Return JSON:
{
  "overall_score": 0.75,
  "score_level": "high|medium|low",
  "reasoning": "assessment referencing the regional factors",
  "cultural_factors": ["factor considered"],
  "potential_issues": ["issue"],
  "recommendations": ["specific improvement"],
  "confidence_score": 0.85,
  "requires_human_review": false
}
`)
	b.WriteString(jsonContract)
	return b.String()
}

// ExecutiveSummary builds the report narrative prompt from aggregate numbers
// only.
func ExecutiveSummary(ws *compliance.WorkflowState) string {
	return fmt.Sprintf(`Write a professional executive summary for a PRD compliance analysis.

PRD: %s
Overall risk level: %s
Overall confidence: %.2f
Features analyzed: %d (high risk: %d, medium: %d, low: %d)
Critical issues: %d
Jurisdictions with compliance concerns: %d of %d

Cover: overview, key risks, compliance posture, and next steps, in 4-6 short paragraphs of plain prose. Do not invent numbers beyond those given.`,
		ws.PRDName,
		ws.OverallRiskLevel,
		ws.OverallConfidenceScore,
		ws.TotalFeaturesAnalyzed,
		ws.HighRiskFeatures,
		ws.MediumRiskFeatures,
		ws.LowRiskFeatures,
		len(ws.CriticalIssues),
		statesWithIssues(ws),
		len(ws.StateAnalysisResults),
	)
}

func statesWithIssues(ws *compliance.WorkflowState) int {
	n := 0
	for _, s := range ws.StateAnalysisResults {
		if s.NonCompliantFeatures > 0 {
			n++
		}
	}
	return n
}
