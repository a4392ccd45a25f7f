package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/complyradar/complyradar/internal/domain/compliance"
)

type WorkflowRepository struct {
	db *sql.DB
}

func NewWorkflowRepository(db *sql.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

// Save upserts one completed workflow. The full state is stored as JSON;
// the summary columns exist for listing queries only.
func (r *WorkflowRepository) Save(ctx context.Context, ws *domain.WorkflowState) error {
	const q = `
INSERT INTO compliance_workflows
(workflow_id, prd_name, status, overall_risk_level, overall_confidence,
 total_features, high_risk, medium_risk, low_risk,
 report_url, processing_time, started_at, completed_at, result_json)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 status=VALUES(status),
 overall_risk_level=VALUES(overall_risk_level),
 overall_confidence=VALUES(overall_confidence),
 total_features=VALUES(total_features),
 high_risk=VALUES(high_risk), medium_risk=VALUES(medium_risk), low_risk=VALUES(low_risk),
 report_url=VALUES(report_url),
 processing_time=VALUES(processing_time),
 completed_at=VALUES(completed_at),
 result_json=VALUES(result_json);
`
	payload, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("marshal workflow %s: %w", ws.WorkflowID, err)
	}
	started := ws.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	_, err = r.db.ExecContext(ctx, q,
		ws.WorkflowID, ws.PRDName, string(ws.Status), string(ws.OverallRiskLevel), ws.OverallConfidenceScore,
		ws.TotalFeaturesAnalyzed, ws.HighRiskFeatures, ws.MediumRiskFeatures, ws.LowRiskFeatures,
		ws.ReportURL, ws.ProcessingTime, started, ws.CompletedAt, payload,
	)
	return err
}

func (r *WorkflowRepository) Get(ctx context.Context, workflowID string) (*domain.WorkflowState, error) {
	const q = `SELECT result_json FROM compliance_workflows WHERE workflow_id=? LIMIT 1;`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, q, workflowID).Scan(&payload); err != nil {
		return nil, err
	}
	var ws domain.WorkflowState
	if err := json.Unmarshal(payload, &ws); err != nil {
		return nil, fmt.Errorf("unmarshal workflow %s: %w", workflowID, err)
	}
	return &ws, nil
}

func (r *WorkflowRepository) Latest(ctx context.Context, limit int) ([]*domain.WorkflowState, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `SELECT result_json FROM compliance_workflows ORDER BY started_at DESC LIMIT ?;`
	return r.list(ctx, q, limit)
}

func (r *WorkflowRepository) Paginate(ctx context.Context, page, pageSize int) ([]*domain.WorkflowState, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	const q = `SELECT result_json FROM compliance_workflows ORDER BY started_at DESC LIMIT ? OFFSET ?;`
	return r.list(ctx, q, pageSize, (page-1)*pageSize)
}

func (r *WorkflowRepository) list(ctx context.Context, q string, args ...any) ([]*domain.WorkflowState, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.WorkflowState
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var ws domain.WorkflowState
		if err := json.Unmarshal(payload, &ws); err != nil {
			return nil, err
		}
		out = append(out, &ws)
	}
	return out, rows.Err()
}
