package postgres

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

// Save upserts one completed workflow keyed on workflow_id.
func (r *WorkflowRepository) Save(ctx context.Context, ws *domain.WorkflowState) error {
	const q = `
INSERT INTO compliance_workflows
(workflow_id, prd_name, status, overall_risk_level, overall_confidence,
 total_features, high_risk, medium_risk, low_risk,
 report_url, processing_time, started_at, completed_at, result_json)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
ON CONFLICT (workflow_id) DO UPDATE SET
 status=EXCLUDED.status,
 overall_risk_level=EXCLUDED.overall_risk_level,
 overall_confidence=EXCLUDED.overall_confidence,
 total_features=EXCLUDED.total_features,
 high_risk=EXCLUDED.high_risk, medium_risk=EXCLUDED.medium_risk, low_risk=EXCLUDED.low_risk,
 report_url=EXCLUDED.report_url,
 processing_time=EXCLUDED.processing_time,
 completed_at=EXCLUDED.completed_at,
 result_json=EXCLUDED.result_json;
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
	const q = `SELECT result_json FROM compliance_workflows WHERE workflow_id=$1 LIMIT 1;`
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
	const q = `SELECT result_json FROM compliance_workflows ORDER BY started_at DESC LIMIT $1;`
	return r.list(ctx, q, limit)
}

func (r *WorkflowRepository) Paginate(ctx context.Context, page, pageSize int) ([]*domain.WorkflowState, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	const q = `SELECT result_json FROM compliance_workflows ORDER BY started_at DESC LIMIT $1 OFFSET $2;`
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
