package compliance

import (
	"time"
)

// Provenance marks whether a record was produced by the generation model or
// by the deterministic fallback path.
type Provenance string

const (
	ProducedByModel    Provenance = "model"
	ProducedByFallback Provenance = "fallback"
)

// Status enum for a workflow run.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Feature is a discrete product capability extracted from a PRD. Created by
// the extractor, immutable afterwards, referenced by ID from every
// downstream record.
type Feature struct {
	ID                    string   `json:"feature_id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Content               string   `json:"content"`
	DataTypes             []string `json:"data_types"`
	TechnicalRequirements []string `json:"technical_requirements"`
	Priority              string   `json:"priority"`
}

// StageOutput is one analysis-chain stage's structured result for one
// feature. Each stage's output is the strict input to the next; stages never
// see raw generation text from earlier stages.
type StageOutput struct {
	StageName      string         `json:"stage_name"`
	FeatureID      string         `json:"feature_id"`
	Result         map[string]any `json:"result"`
	Confidence     float64        `json:"confidence"`
	ProcessingTime float64        `json:"processing_time"`
	ProducedVia    Provenance     `json:"produced_via"`
}

// StateComplianceScore is one feature's compliance verdict for one
// jurisdiction. RiskLevel is derived from ComplianceScore at construction
// and never set independently.
type StateComplianceScore struct {
	StateCode               string    `json:"state_code"`
	StateName               string    `json:"state_name"`
	ComplianceScore         float64   `json:"compliance_score"`
	RiskLevel               RiskLevel `json:"risk_level"`
	Reasoning               string    `json:"reasoning"`
	NonCompliantRegulations []string  `json:"non_compliant_regulations"`
	RequiredActions         []string  `json:"required_actions"`
	Notes                   string    `json:"notes,omitempty"`
	ProducedVia             Provenance `json:"produced_via"`
}

// NewStateComplianceScore clamps the score into [0,1] and derives the risk
// level, keeping the score/level invariant true by construction.
func NewStateComplianceScore(code, name string, score float64, reasoning string, regs, actions []string, notes string, via Provenance) StateComplianceScore {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return StateComplianceScore{
		StateCode:               code,
		StateName:               name,
		ComplianceScore:         score,
		RiskLevel:               ScoreToRiskLevel(score),
		Reasoning:               reasoning,
		NonCompliantRegulations: regs,
		RequiredActions:         actions,
		Notes:                   notes,
		ProducedVia:             via,
	}
}

// FeatureComplianceResult aggregates everything known about one feature:
// the chain verdict plus one StateComplianceScore per known jurisdiction.
// A partial state map is a data-integrity violation.
type FeatureComplianceResult struct {
	Feature               Feature                         `json:"feature"`
	RiskLevel             RiskLevel                       `json:"risk_level"`
	ConfidenceScore       float64                         `json:"confidence_score"`
	ComplianceFlags       []string                        `json:"compliance_flags"`
	StateComplianceScores map[string]StateComplianceScore `json:"state_compliance_scores"`
	Reasoning             string                          `json:"reasoning"`
	Recommendations       []string                        `json:"recommendations"`
	RequiresHumanReview   bool                            `json:"requires_human_review"`
	ProcessingTime        float64                         `json:"processing_time"`
}

// StateSummary is the jurisdiction-centric view produced by the aggregator.
type StateSummary struct {
	StateCode            string    `json:"state_code"`
	StateName            string    `json:"state_name"`
	OverallRiskLevel     RiskLevel `json:"overall_risk_level"`
	ComplianceRate       float64   `json:"compliance_rate"`
	NonCompliantFeatures int       `json:"non_compliant_features"`
	TotalFeatures        int       `json:"total_features"`
}

// RiskSnapshot is the condensed risk/compliance picture embedded in the
// executive report.
type RiskSnapshot struct {
	OverallRiskLevel        RiskLevel      `json:"overall_risk_level"`
	OverallConfidenceScore  float64        `json:"overall_confidence_score"`
	FeatureRiskDistribution map[string]int `json:"feature_risk_distribution"`
	CriticalIssues          []string       `json:"critical_issues"`
	StatesWithIssues        int            `json:"states_with_issues"`
}

// ExecutiveReport is the business-level summary derived from a completed
// workflow. Generated once, read-only afterwards.
type ExecutiveReport struct {
	ReportID        string       `json:"report_id"`
	WorkflowID      string       `json:"workflow_id"`
	PRDName         string       `json:"prd_name"`
	GeneratedAt     time.Time    `json:"generated_at"`
	Summary         string       `json:"executive_summary"`
	KeyFindings     []string     `json:"key_findings"`
	RiskSnapshot    RiskSnapshot `json:"risk_snapshot"`
	Recommendations []string     `json:"recommendations"`
	NextSteps       []string     `json:"next_steps"`
	ProducedVia     Provenance   `json:"produced_via"`
}

// WorkflowState is the aggregate for one analysis run. It is fully
// materialized before it is persisted; a partially built state never leaves
// the pipeline.
type WorkflowState struct {
	WorkflowID               string                    `json:"workflow_id"`
	PRDName                  string                    `json:"prd_name"`
	PRDDescription           string                    `json:"prd_description,omitempty"`
	StartedAt                time.Time                 `json:"started_at"`
	CompletedAt              time.Time                 `json:"completed_at"`
	OverallRiskLevel         RiskLevel                 `json:"overall_risk_level"`
	OverallConfidenceScore   float64                   `json:"overall_confidence_score"`
	TotalFeaturesAnalyzed    int                       `json:"total_features_analyzed"`
	HighRiskFeatures         int                       `json:"high_risk_features"`
	MediumRiskFeatures       int                       `json:"medium_risk_features"`
	LowRiskFeatures          int                       `json:"low_risk_features"`
	CriticalIssues           []string                  `json:"critical_issues"`
	TopRecommendations       []string                  `json:"top_recommendations"`
	FeatureComplianceResults []FeatureComplianceResult `json:"feature_compliance_results"`
	StateAnalysisResults     map[string]StateSummary   `json:"state_analysis_results"`
	CulturalAnalysis         *CulturalAnalysis         `json:"cultural_analysis,omitempty"`
	ExecutiveReport          *ExecutiveReport          `json:"executive_report,omitempty"`
	ReportURL                string                    `json:"report_url,omitempty"`
	ProcessingTime           float64                   `json:"processing_time"`
	Status                   Status                    `json:"status"`
}
