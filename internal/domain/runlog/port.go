package runlog

import "context"

// Repository persists run log entries. Writes are best-effort: a failed
// audit write never fails the analysis itself.
type Repository interface {
	Save(ctx context.Context, e *Entry) error
	ListByWorkflow(ctx context.Context, workflowID string, limit int) ([]*Entry, error)
}
