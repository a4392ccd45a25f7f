package runlog

import "time"

// Entry is one persisted audit record for a workflow run, typically a
// degraded-path event (generation failure, parse failure, fallback used).
type Entry struct {
	ID          int64     `json:"id"`
	WorkflowID  string    `json:"workflow_id"`
	Component   string    `json:"component"` // extractor | chain | sweep | report
	Phase       string    `json:"phase"`     // generate | parse | fallback
	Message     string    `json:"message"`
	DetailsJSON string    `json:"details_json,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
