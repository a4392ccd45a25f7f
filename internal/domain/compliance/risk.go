package compliance

// RiskLevel enum
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// nonCompliantCutoff is the compliance_score boundary below which a
// (feature, state) cell counts as non-compliant. It coincides with the
// medium/high band boundary so the two classifications can never diverge.
const nonCompliantCutoff = 0.5

// ScoreToRiskLevel is the single canonical mapping from a compliance score
// (1.0 = fully compliant) to a risk level. No other code path may decide
// thresholds independently.
func ScoreToRiskLevel(score float64) RiskLevel {
	switch {
	case score >= 0.8:
		return RiskLow
	case score >= nonCompliantCutoff:
		return RiskMedium
	case score >= 0.2:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// IsNonCompliant reports whether a compliance score falls in the high or
// critical band. Used everywhere compliance/non-compliance is reported.
func IsNonCompliant(score float64) bool {
	return score < nonCompliantCutoff
}

var riskRank = map[RiskLevel]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2, RiskCritical: 3}

// MaxRisk returns the more severe of two risk levels.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if riskRank[b] > riskRank[a] {
		return b
	}
	return a
}

// ParseRiskLevel normalizes free-form model output to a known level,
// defaulting to medium for anything unrecognized.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return RiskLevel(s)
	}
	return RiskMedium
}
