package compliance

// SensitivityLevel grades cultural sensitivity. Unlike RiskLevel it reads
// upward: a high level means the feature handles regional norms well.
type SensitivityLevel string

const (
	SensitivityLow    SensitivityLevel = "low"
	SensitivityMedium SensitivityLevel = "medium"
	SensitivityHigh   SensitivityLevel = "high"
)

// ScoreToSensitivityLevel maps a sensitivity score (1.0 = highly sensitive
// to regional norms) to its level. Single owner of these thresholds.
func ScoreToSensitivityLevel(score float64) SensitivityLevel {
	switch {
	case score >= 0.7:
		return SensitivityHigh
	case score >= 0.4:
		return SensitivityMedium
	default:
		return SensitivityLow
	}
}

// RegionalSensitivityScore is the cultural verdict for one deployment
// region, covering all of a run's features together.
type RegionalSensitivityScore struct {
	Region              string           `json:"region"`
	OverallScore        float64          `json:"overall_score"`
	ScoreLevel          SensitivityLevel `json:"score_level"`
	Reasoning           string           `json:"reasoning"`
	CulturalFactors     []string         `json:"cultural_factors"`
	PotentialIssues     []string         `json:"potential_issues"`
	Recommendations     []string         `json:"recommendations"`
	ConfidenceScore     float64          `json:"confidence_score"`
	RequiresHumanReview bool             `json:"requires_human_review"`
	ProducedVia         Provenance       `json:"produced_via"`
}

// NewRegionalSensitivityScore clamps the score and derives the level so the
// two can never disagree.
func NewRegionalSensitivityScore(region string, score float64, reasoning string, factors, issues, recs []string, confidence float64, review bool, via Provenance) RegionalSensitivityScore {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return RegionalSensitivityScore{
		Region:              region,
		OverallScore:        score,
		ScoreLevel:          ScoreToSensitivityLevel(score),
		Reasoning:           reasoning,
		CulturalFactors:     factors,
		PotentialIssues:     issues,
		Recommendations:     recs,
		ConfidenceScore:     confidence,
		RequiresHumanReview: review,
		ProducedVia:         via,
	}
}

// CulturalAnalysis is the workflow-level rollup across every deployment
// region, embedded in the WorkflowState document.
type CulturalAnalysis struct {
	OverallLevel          SensitivityLevel                    `json:"overall_cultural_sensitivity"`
	OverallAverageScore   float64                             `json:"overall_average_score"`
	RegionalScores        map[string]RegionalSensitivityScore `json:"regional_scores"`
	KeyCulturalIssues     []string                            `json:"key_cultural_issues"`
	Recommendations       []string                            `json:"recommendations"`
	TotalFeaturesAnalyzed int                                 `json:"total_features_analyzed"`
	RegionsAnalyzed       int                                 `json:"regions_analyzed"`
	RequiresHumanReview   bool                                `json:"requires_human_review"`
}
