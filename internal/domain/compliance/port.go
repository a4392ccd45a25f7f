package compliance

import "context"

// WorkflowRepository persists completed workflow states. The pipeline only
// ever saves a fully materialized state (all-or-nothing at this boundary).
type WorkflowRepository interface {
	Save(ctx context.Context, ws *WorkflowState) error
	Get(ctx context.Context, workflowID string) (*WorkflowState, error)
	Latest(ctx context.Context, limit int) ([]*WorkflowState, error)
	Paginate(ctx context.Context, page, pageSize int) ([]*WorkflowState, error)
}

// ReportArchive stores the serialized workflow/report pair as an immutable
// artifact and returns an addressable URL.
type ReportArchive interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
