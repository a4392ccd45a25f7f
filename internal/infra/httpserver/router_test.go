package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyradar/complyradar/internal/application"
	appchain "github.com/complyradar/complyradar/internal/application/chain"
	"github.com/complyradar/complyradar/internal/application/culture"
	"github.com/complyradar/complyradar/internal/application/extract"
	"github.com/complyradar/complyradar/internal/application/genclient"
	apppipeline "github.com/complyradar/complyradar/internal/application/pipeline"
	"github.com/complyradar/complyradar/internal/application/report"
	"github.com/complyradar/complyradar/internal/application/sweep"
	"github.com/complyradar/complyradar/internal/domain/ai"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
)

type memRepo struct {
	mu    sync.Mutex
	saved map[string]*compliance.WorkflowState
}

func (r *memRepo) Save(ctx context.Context, ws *compliance.WorkflowState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved[ws.WorkflowID] = ws
	return nil
}

func (r *memRepo) Get(ctx context.Context, id string) (*compliance.WorkflowState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.saved[id]; ok {
		return ws, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memRepo) Latest(ctx context.Context, limit int) ([]*compliance.WorkflowState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*compliance.WorkflowState, 0, len(r.saved))
	for _, ws := range r.saved {
		out = append(out, ws)
	}
	return out, nil
}

func (r *memRepo) Paginate(ctx context.Context, page, pageSize int) ([]*compliance.WorkflowState, error) {
	return r.Latest(ctx, pageSize)
}

type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	return "", ai.ErrUnavailable
}

func newTestHandler(repo *memRepo) http.Handler {
	caller := genclient.New(failingGenerator{}, time.Second, 0, zerolog.Nop())
	catalog := regdata.Default()
	svc := &apppipeline.Service{
		Extractor:      &extract.Service{Gen: caller, Glossary: regdata.DefaultGlossary(), Log: zerolog.Nop()},
		Chain:          &appchain.Service{Gen: caller, Log: zerolog.Nop()},
		Sweep:          &sweep.Service{Gen: caller, Catalog: catalog, MaxConcurrency: 4, Log: zerolog.Nop()},
		Culture:        &culture.Service{Gen: caller, Regions: regdata.DefaultRegions(), MaxConcurrency: 4, Log: zerolog.Nop()},
		Report:         &report.Service{Gen: caller, Log: zerolog.Nop()},
		Catalog:        catalog,
		Repo:           repo,
		Clock:          application.SystemClock{},
		MaxConcurrency: 4,
		Log:            zerolog.Nop(),
	}
	return NewRouter(svc, catalog, nil, zerolog.Nop())
}

func TestAnalyzeEndpointQueuesWorkflow(t *testing.T) {
	repo := &memRepo{saved: make(map[string]*compliance.WorkflowState)}
	handler := newTestHandler(repo)

	body := `{"prd_name": "Social App", "prd_content": "# Face Login\nbiometric sign-in"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	req.RemoteAddr = "10.1.1.1:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp["status"])
	workflowID, _ := resp["workflow_id"].(string)
	assert.Regexp(t, `^wf_`, workflowID)

	// the detached run persists the completed state
	require.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		_, ok := repo.saved[workflowID]
		return ok
	}, 5*time.Second, 20*time.Millisecond)

	req = httptest.NewRequest(http.MethodGet, "/v1/workflows/"+workflowID, nil)
	req.RemoteAddr = "10.1.1.2:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var ws compliance.WorkflowState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ws))
	assert.Equal(t, compliance.StatusCompleted, ws.Status)
	assert.Len(t, ws.StateAnalysisResults, 50)
}

func TestAnalyzeEndpointRejectsBadInput(t *testing.T) {
	handler := newTestHandler(&memRepo{saved: make(map[string]*compliance.WorkflowState)})

	cases := []string{
		`{"prd_name": "", "prd_content": "x"}`,
		`{"prd_name": "ok", "prd_content": ""}`,
		`not json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
		req.RemoteAddr = "10.2.2.2:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
	}
}

func TestGetWorkflowValidation(t *testing.T) {
	handler := newTestHandler(&memRepo{saved: make(map[string]*compliance.WorkflowState)})

	req := httptest.NewRequest(http.MethodGet, "/v1/workflows/../../etc", nil)
	req.RemoteAddr = "10.3.3.3:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.NotEqual(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/workflows/wf_not-a-uuid", nil)
	req.RemoteAddr = "10.3.3.3:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStatesEndpoints(t *testing.T) {
	handler := newTestHandler(&memRepo{saved: make(map[string]*compliance.WorkflowState)})

	req := httptest.NewRequest(http.MethodGet, "/v1/states", nil)
	req.RemoteAddr = "10.4.4.4:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var states []regdata.JurisdictionRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &states))
	assert.Len(t, states, 50)

	req = httptest.NewRequest(http.MethodGet, "/v1/states/CA", nil)
	req.RemoteAddr = "10.4.4.4:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var rec regdata.JurisdictionRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, "California", rec.Name)

	req = httptest.NewRequest(http.MethodGet, "/v1/states/XX", nil)
	req.RemoteAddr = "10.4.4.4:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/states/california", nil)
	req.RemoteAddr = "10.4.4.4:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(&memRepo{saved: make(map[string]*compliance.WorkflowState)})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestProbeEndpoints(t *testing.T) {
	handler := newTestHandler(&memRepo{saved: make(map[string]*compliance.WorkflowState)})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var ready map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ready))
	assert.Equal(t, "ready", ready["status"])

	req = httptest.NewRequest(http.MethodGet, "/live", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
