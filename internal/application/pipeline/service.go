// Package pipeline orchestrates a full analysis run: extraction, the
// per-feature analysis chain, the 50-state sweep, aggregation, and the
// executive report. Only a fully materialized completed state is persisted.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/complyradar/complyradar/internal/application"
	"github.com/complyradar/complyradar/internal/application/aggregate"
	"github.com/complyradar/complyradar/internal/application/chain"
	"github.com/complyradar/complyradar/internal/application/culture"
	"github.com/complyradar/complyradar/internal/application/extract"
	"github.com/complyradar/complyradar/internal/application/report"
	"github.com/complyradar/complyradar/internal/application/sweep"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
	"github.com/complyradar/complyradar/internal/domain/runlog"
)

// AnalyzeCommand carries one PRD submission.
type AnalyzeCommand struct {
	PRDName        string
	PRDDescription string
	PRDContent     string
}

// Service wires the stages together. It is safe for concurrent use.
type Service struct {
	Extractor      *extract.Service
	Chain          *chain.Service
	Sweep          *sweep.Service
	Culture        *culture.Service
	Report         *report.Service
	Catalog        *regdata.Catalog
	Repo           compliance.WorkflowRepository
	Archive        compliance.ReportArchive
	RunLog         runlog.Repository
	Clock          application.Clock
	MaxConcurrency int
	Log            zerolog.Logger
}

// NewWorkflowID mints the external identifier for a run.
func NewWorkflowID() string { return "wf_" + uuid.NewString() }

// AnalyzeUntilDone runs with context.Background() so a detached goroutine in
// the router does not inherit the request's cancellation.
func (s *Service) AnalyzeUntilDone(workflowID string, cmd AnalyzeCommand) (*compliance.WorkflowState, error) {
	return s.Analyze(context.Background(), workflowID, cmd)
}

// Analyze executes the full pipeline. Cancellation discards all partial
// work; nothing is persisted for a cancelled run.
func (s *Service) Analyze(ctx context.Context, workflowID string, cmd AnalyzeCommand) (*compliance.WorkflowState, error) {
	started := s.Clock.Now()
	log := s.Log.With().Str("workflow", workflowID).Logger()
	log.Info().Str("prd", cmd.PRDName).Msg("analysis started")

	extracted, err := s.Extractor.Extract(ctx, cmd.PRDName, cmd.PRDDescription, cmd.PRDContent)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if extracted.ProducedVia == compliance.ProducedByFallback {
		s.audit(ctx, workflowID, "extractor", "fallback", fmt.Sprintf("rule-based extraction produced %d features", len(extracted.Features)))
	}
	log.Info().Int("features", len(extracted.Features)).Str("via", string(extracted.ProducedVia)).Msg("features extracted")

	chainResults, err := s.runChains(ctx, workflowID, extracted.Features)
	if err != nil {
		return nil, fmt.Errorf("analysis chain: %w", err)
	}

	grid, err := s.Sweep.Run(ctx, extracted.Features)
	if err != nil {
		return nil, fmt.Errorf("state sweep: %w", err)
	}

	cultural, err := s.Culture.Analyze(ctx, extracted.Features)
	if err != nil {
		return nil, fmt.Errorf("cultural analysis: %w", err)
	}
	for _, region := range cultural.RegionalScores {
		if region.ProducedVia == compliance.ProducedByFallback {
			s.audit(ctx, workflowID, "culture", "fallback",
				fmt.Sprintf("region %s scored by rule-based assessment", region.Region))
		}
	}

	rollup, err := aggregate.Build(aggregate.Input{
		Features:     extracted.Features,
		ChainResults: chainResults,
		StateGrid:    grid,
		Catalog:      s.Catalog,
	})
	if err != nil {
		s.audit(ctx, workflowID, "aggregate", "parse", err.Error())
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	ws := &compliance.WorkflowState{
		WorkflowID:               workflowID,
		PRDName:                  cmd.PRDName,
		PRDDescription:           cmd.PRDDescription,
		StartedAt:                started,
		OverallRiskLevel:         rollup.OverallRiskLevel,
		OverallConfidenceScore:   rollup.OverallConfidence,
		TotalFeaturesAnalyzed:    len(extracted.Features),
		HighRiskFeatures:         rollup.HighRiskFeatures,
		MediumRiskFeatures:       rollup.MediumRiskFeatures,
		LowRiskFeatures:          rollup.LowRiskFeatures,
		CriticalIssues:           rollup.CriticalIssues,
		TopRecommendations:       rollup.TopRecommendations,
		FeatureComplianceResults: rollup.FeatureResults,
		StateAnalysisResults:     rollup.StateSummaries,
		CulturalAnalysis:         &cultural,
		Status:                   compliance.StatusCompleted,
	}

	rep := s.Report.Build(ctx, ws, s.Clock.Now())
	ws.ExecutiveReport = &rep
	if rep.ProducedVia == compliance.ProducedByFallback {
		s.audit(ctx, workflowID, "report", "fallback", "template narrative used")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	completed := s.Clock.Now()
	ws.CompletedAt = completed
	ws.ProcessingTime = completed.Sub(started).Seconds()

	if url := s.archiveReport(ctx, ws); url != "" {
		ws.ReportURL = url
	}
	if err := s.Repo.Save(ctx, ws); err != nil {
		return nil, fmt.Errorf("persist workflow: %w", err)
	}
	log.Info().
		Str("risk", string(ws.OverallRiskLevel)).
		Float64("confidence", ws.OverallConfidenceScore).
		Float64("seconds", ws.ProcessingTime).
		Msg("analysis completed")
	return ws, nil
}

// runChains fans the analysis chain out across features with bounded
// concurrency. Results are collected per slot; the map is built after Wait
// so no goroutine writes it concurrently.
func (s *Service) runChains(ctx context.Context, workflowID string, features []compliance.Feature) (map[string]chain.Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	limit := s.MaxConcurrency
	if limit <= 0 {
		limit = 8
	}
	g.SetLimit(limit)

	results := make([]chain.Result, len(features))
	for i, f := range features {
		i, f := i, f
		g.Go(func() error {
			res, err := s.Chain.Analyze(gctx, f)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]chain.Result, len(features))
	for _, r := range results {
		out[r.FeatureID] = r
		for _, st := range r.Stages {
			if st.ProducedVia == compliance.ProducedByFallback {
				s.audit(ctx, workflowID, "chain", "fallback",
					fmt.Sprintf("feature %s stage %s used pattern matching", r.FeatureID, st.StageName))
			}
		}
	}
	return out, nil
}

// archiveReport uploads the workflow/report pair. Archive failure is logged
// and audited but never fails the run.
func (s *Service) archiveReport(ctx context.Context, ws *compliance.WorkflowState) string {
	if s.Archive == nil {
		return ""
	}
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		s.Log.Error().Err(err).Str("workflow", ws.WorkflowID).Msg("report marshal failed")
		return ""
	}
	key := fmt.Sprintf("workflows/%s/report.json", ws.WorkflowID)
	url, err := s.Archive.Upload(ctx, key, data, "application/json")
	if err != nil {
		s.Log.Warn().Err(err).Str("workflow", ws.WorkflowID).Msg("report archive upload failed")
		s.audit(ctx, ws.WorkflowID, "report", "archive", err.Error())
		return ""
	}
	return url
}

// audit writes a best-effort run log entry.
func (s *Service) audit(ctx context.Context, workflowID, component, phase, message string) {
	if s.RunLog == nil {
		return
	}
	e := &runlog.Entry{
		WorkflowID: workflowID,
		Component:  component,
		Phase:      phase,
		Message:    message,
		CreatedAt:  s.Clock.Now(),
	}
	if err := s.RunLog.Save(ctx, e); err != nil {
		s.Log.Debug().Err(err).Str("workflow", workflowID).Msg("run log write failed")
	}
}

// Get returns one persisted workflow.
func (s *Service) Get(ctx context.Context, workflowID string) (*compliance.WorkflowState, error) {
	return s.Repo.Get(ctx, workflowID)
}

// Latest returns the most recent workflows.
func (s *Service) Latest(ctx context.Context, limit int) ([]*compliance.WorkflowState, error) {
	return s.Repo.Latest(ctx, limit)
}

// Paginate returns a page of workflows.
func (s *Service) Paginate(ctx context.Context, page, pageSize int) ([]*compliance.WorkflowState, error) {
	return s.Repo.Paginate(ctx, page, pageSize)
}

// Logs returns the audit trail for a workflow.
func (s *Service) Logs(ctx context.Context, workflowID string, limit int) ([]*runlog.Entry, error) {
	if s.RunLog == nil {
		return nil, nil
	}
	return s.RunLog.ListByWorkflow(ctx, workflowID, limit)
}
