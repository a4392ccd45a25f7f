// Package fallback is the deterministic, non-generative analysis path.
// All keyword tables and scoring live here so the pattern-matching results
// are identical wherever they are invoked, and idempotent for a given input.
package fallback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
)

// Confidence is the fixed confidence assigned to fallback-produced output.
const Confidence = 0.5

var dataTypeKeywords = map[string][]string{
	"personal_data":   {"personal", "user data", "customer", "profile", "email", "account"},
	"location_data":   {"location", "gps", "geolocation", "geo-location", "latitude", "proximity"},
	"biometric_data":  {"biometric", "fingerprint", "facial", "face recognition", "voiceprint", "iris"},
	"health_data":     {"health", "medical", "diagnosis", "fitness", "heart rate", "wellness"},
	"financial_data":  {"financial", "payment", "credit card", "bank", "transaction", "billing"},
	"behavioral_data": {"tracking", "behavior", "browsing history", "interaction pattern", "targeted advertising", "recommendation"},
	"device_data":     {"device", "ip address", "device identifier", "cookie", "fingerprinting"},
	"childrens_data":  {"child", "minor", "under 13", "parental consent", "age verification"},
}

// sensitivity weight per data type, applied against the jurisdiction tier.
var dataTypeWeight = map[string]float64{
	"personal_data":   0.10,
	"location_data":   0.25,
	"biometric_data":  0.30,
	"health_data":     0.30,
	"financial_data":  0.25,
	"behavioral_data": 0.15,
	"device_data":     0.05,
	"childrens_data":  0.30,
}

var consentKeywords = []string{"consent", "opt-out", "opt out", "deletion request", "privacy policy", "user controls"}

// Phrases that state consent is absent. These outrank the positive keywords:
// "without consent" must never read as a consent mechanism.
var consentNegations = []string{"without consent", "without user consent", "without explicit consent", "no consent", "lacks consent", "lacking consent"}

var tierMultiplier = map[regdata.RiskTier]float64{
	regdata.TierHigh:   1.0,
	regdata.TierMedium: 0.6,
	regdata.TierLow:    0.3,
}

// featureText flattens the fields pattern matching looks at.
func featureText(f compliance.Feature) string {
	parts := []string{f.Name, f.Description, f.Content}
	parts = append(parts, f.DataTypes...)
	parts = append(parts, f.TechnicalRequirements...)
	return strings.ToLower(strings.Join(parts, " "))
}

// DetectDataTypes returns the canonical data type labels whose keywords
// appear in text, sorted for determinism.
func DetectDataTypes(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for dt, words := range dataTypeKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				out = append(out, dt)
				break
			}
		}
	}
	sort.Strings(out)
	if len(out) == 0 {
		out = []string{"personal_data"}
	}
	return out
}

// HasConsentSignals reports whether the text mentions any consent or
// user-control mechanism. An explicit negation overrides any match.
func HasConsentSignals(text string) bool {
	lower := strings.ToLower(text)
	if HasConsentNegation(lower) {
		return false
	}
	for _, w := range consentKeywords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// HasConsentNegation reports whether the text explicitly states that data is
// handled without consent.
func HasConsentNegation(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range consentNegations {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// MatchRegimes maps detected data types to the fixed global regulation
// vocabulary used by the regulation-matching stage.
func MatchRegimes(dataTypes []string) []string {
	set := map[string]bool{}
	for _, dt := range dataTypes {
		switch dt {
		case "personal_data", "behavioral_data", "device_data":
			set["GDPR"], set["CCPA"] = true, true
		case "location_data", "biometric_data", "health_data", "childrens_data":
			set["GDPR"], set["CCPA"], set["PIPL"], set["LGPD"] = true, true, true, true
		case "financial_data":
			set["GDPR"], set["LGPD"] = true, true
		}
	}
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// FeatureRiskScore computes a deterministic compliance-like score for a
// feature independent of any jurisdiction, used by the risk-assessment
// stage's fallback. 1.0 means fully compliant.
func FeatureRiskScore(f compliance.Feature) float64 {
	text := featureText(f)
	score := 0.9
	for _, dt := range DetectDataTypes(text) {
		score -= dataTypeWeight[dt] * 0.8
	}
	switch {
	case HasConsentNegation(text):
		score -= 0.30
	case !HasConsentSignals(text):
		score -= 0.15
	}
	return clamp(score)
}

// StateResult is the deterministic verdict for one feature against one
// jurisdiction.
type StateResult struct {
	Score           float64
	NonCompliant    []string
	RequiredActions []string
	Reasoning       string
}

// AnalyzeState scores a feature against a jurisdiction by regulation-keyword
// presence in the feature's data types and technical requirements. Pure and
// idempotent: identical input always yields an identical result.
func AnalyzeState(f compliance.Feature, rec regdata.JurisdictionRecord) StateResult {
	text := featureText(f)
	detected := DetectDataTypes(text)
	mult := tierMultiplier[rec.RiskTier]

	score := 0.92
	for _, dt := range detected {
		score -= dataTypeWeight[dt] * mult
	}
	hasConsent := HasConsentSignals(text)
	switch {
	case HasConsentNegation(text):
		score -= 0.2 * mult
	case !hasConsent && len(detected) > 0:
		score -= 0.1 * mult
	}
	if hasConsent {
		score += 0.05
	}
	score = clamp(score)

	var regs, actions []string
	if compliance.IsNonCompliant(score) {
		regs = append(regs, rec.Regulations...)
		if !hasConsent {
			actions = append(actions, "Implement consent mechanisms before collection")
		}
		actions = append(actions,
			fmt.Sprintf("Review %s obligations: %s", rec.Name, strings.Join(rec.KeyRequirements, "; ")),
			"Add data deletion and access request handling",
		)
	}

	reasoning := fmt.Sprintf(
		"Pattern analysis against %s (%s, %s enforcement): detected %s; consent signals: %t.",
		rec.Name, rec.Code, rec.EnforcementLevel, strings.Join(detected, ", "), hasConsent,
	)
	return StateResult{Score: score, NonCompliant: regs, RequiredActions: actions, Reasoning: reasoning}
}

// Ambiguous reports whether a pattern score sits too close to the
// non-compliance boundary to trust without validation.
func Ambiguous(score float64) bool {
	return score >= 0.45 && score < 0.55
}

// DefaultStateScore builds the conservative entry used when neither the
// batch call nor pattern matching produced a verdict for a cell.
func DefaultStateScore() StateResult {
	return StateResult{
		Score:     0.5,
		Reasoning: "insufficient data for a jurisdiction-specific verdict; conservative default applied",
	}
}

func clamp(v float64) float64 {
	if v < 0.05 {
		return 0.05
	}
	if v > 0.98 {
		return 0.98
	}
	return v
}
