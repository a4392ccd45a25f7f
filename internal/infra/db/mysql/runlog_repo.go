package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	domain "github.com/complyradar/complyradar/internal/domain/runlog"
)

type RunLogRepository struct {
	db *sql.DB
}

func NewRunLogRepository(db *sql.DB) *RunLogRepository { return &RunLogRepository{db: db} }

func (r *RunLogRepository) Save(ctx context.Context, e *domain.Entry) error {
	const q = `
INSERT INTO compliance_run_logs
  (workflow_id, component, phase, message, details_json, created_at)
VALUES (?,?,?,?,?,?)
`
	details := e.DetailsJSON
	if strings.TrimSpace(details) == "" {
		details = "{}"
	} else {
		// ensure valid json; if invalid, wrap as string field
		var js any
		if json.Unmarshal([]byte(details), &js) != nil {
			b, _ := json.Marshal(map[string]string{"raw": details})
			details = string(b)
		}
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, e.WorkflowID, e.Component, e.Phase, e.Message, details, created)
	return err
}

func (r *RunLogRepository) ListByWorkflow(ctx context.Context, workflowID string, limit int) ([]*domain.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT id, workflow_id, component, phase, message, details_json, created_at
FROM compliance_run_logs
WHERE workflow_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, workflowID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.WorkflowID, &e.Component, &e.Phase, &e.Message, &e.DetailsJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
