package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	apppipeline "github.com/complyradar/complyradar/internal/application/pipeline"
	"github.com/complyradar/complyradar/internal/domain/regdata"
	"github.com/complyradar/complyradar/internal/middleware"
)

type Router struct {
	pipeline *apppipeline.Service
	catalog  *regdata.Catalog
	log      zerolog.Logger
}

func NewRouter(pipeline *apppipeline.Service, catalog *regdata.Catalog, checkers map[string]middleware.HealthChecker, log zerolog.Logger) http.Handler {
	r := &Router{pipeline: pipeline, catalog: catalog, log: log}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware(log))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(30, 10))

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/workflows", r.wrap(r.handleListWorkflows))
		rt.Get("/workflows/{id}", r.wrap(r.handleGetWorkflow))
		rt.Get("/workflows/{id}/logs", r.wrap(r.handleWorkflowLogs))
		rt.Get("/states", r.wrap(r.handleListStates))
		rt.Get("/states/{code}", r.wrap(r.handleGetState))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

func badRequest(format string, a ...any) error {
	return badRequestError{msg: fmt.Sprintf(format, a...)}
}

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var br badRequestError
			if errors.As(err, &br) {
				http.Error(w, br.msg, http.StatusBadRequest)
				return
			}
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /v1/analyze
// Body: {"prd_name": "...", "prd_description": "...", "prd_content": "..."}
// The analysis runs in the background; the response carries the workflow id
// to poll.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		PRDName        string `json:"prd_name"`
		PRDDescription string `json:"prd_description"`
		PRDContent     string `json:"prd_content"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	body.PRDName = middleware.SanitizeString(body.PRDName)
	if err := middleware.ValidatePRDName(body.PRDName); err != nil {
		return badRequest("%v", err)
	}
	if err := middleware.ValidatePRDContent(body.PRDContent); err != nil {
		return badRequest("%v", err)
	}

	workflowID := apppipeline.NewWorkflowID()
	cmd := apppipeline.AnalyzeCommand{
		PRDName:        body.PRDName,
		PRDDescription: middleware.SanitizeString(body.PRDDescription),
		PRDContent:     body.PRDContent,
	}

	// Run detached so the analysis survives the client disconnecting.
	go func() {
		middleware.IncrementAnalyses()
		middleware.IncrementAnalysesRunning()
		defer middleware.DecrementAnalysesRunning()

		if _, err := r.pipeline.AnalyzeUntilDone(workflowID, cmd); err != nil {
			middleware.IncrementAnalysesFailed()
			r.log.Error().Err(err).Str("workflow", workflowID).Msg("background analysis failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(map[string]any{
		"workflow_id": workflowID,
		"status":      "queued",
		"prd_name":    body.PRDName,
		"queued_at":   time.Now().UTC(),
	})
}

// GET /v1/workflows/{id}
func (r *Router) handleGetWorkflow(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateWorkflowID(id); err != nil {
		return badRequest("%v", err)
	}
	ws, err := r.pipeline.Get(req.Context(), id)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(ws)
}

// GET /v1/workflows?page=&page_size=  (or ?limit= for the latest N)
func (r *Router) handleListWorkflows(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	if q.Get("page") != "" || q.Get("page_size") != "" {
		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("page_size"))
		list, err := r.pipeline.Paginate(req.Context(), middleware.ValidatePage(page), middleware.ValidateLimit(size))
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/json")
		return json.NewEncoder(w).Encode(list)
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	list, err := r.pipeline.Latest(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/workflows/{id}/logs?limit=50
func (r *Router) handleWorkflowLogs(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateWorkflowID(id); err != nil {
		return badRequest("%v", err)
	}
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	entries, err := r.pipeline.Logs(req.Context(), id, middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(entries)
}

// GET /v1/states
func (r *Router) handleListStates(w http.ResponseWriter, req *http.Request) error {
	codes := r.catalog.ListAll()
	out := make([]regdata.JurisdictionRecord, 0, len(codes))
	for _, code := range codes {
		rec, _ := r.catalog.Get(code)
		out = append(out, rec)
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(out)
}

// GET /v1/states/{code}
func (r *Router) handleGetState(w http.ResponseWriter, req *http.Request) error {
	code := chi.URLParam(req, "code")
	if err := middleware.ValidateStateCode(code); err != nil {
		return badRequest("%v", err)
	}
	rec, ok := r.catalog.Get(code)
	if !ok {
		return sql.ErrNoRows
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(rec)
}
