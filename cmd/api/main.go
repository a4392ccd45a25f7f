package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/complyradar/complyradar/internal/application"
	"github.com/complyradar/complyradar/internal/application/chain"
	"github.com/complyradar/complyradar/internal/application/culture"
	"github.com/complyradar/complyradar/internal/application/extract"
	"github.com/complyradar/complyradar/internal/application/genclient"
	"github.com/complyradar/complyradar/internal/application/pipeline"
	"github.com/complyradar/complyradar/internal/application/report"
	"github.com/complyradar/complyradar/internal/application/sweep"
	"github.com/complyradar/complyradar/internal/config"
	domai "github.com/complyradar/complyradar/internal/domain/ai"
	"github.com/complyradar/complyradar/internal/domain/compliance"
	"github.com/complyradar/complyradar/internal/domain/regdata"
	"github.com/complyradar/complyradar/internal/domain/runlog"
	openaiclient "github.com/complyradar/complyradar/internal/infra/ai/openai"
	mysqlp "github.com/complyradar/complyradar/internal/infra/db/mysql"
	postgresp "github.com/complyradar/complyradar/internal/infra/db/postgres"
	"github.com/complyradar/complyradar/internal/infra/httpserver"
	minioStore "github.com/complyradar/complyradar/internal/infra/storage"
	"github.com/complyradar/complyradar/internal/middleware"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("config load error")
	}

	ctx := context.Background()

	var db *sql.DB
	var repo compliance.WorkflowRepository
	var runlogRepo runlog.Repository
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect error")
		}
		repo = postgresp.NewWorkflowRepository(db)
		runlogRepo = postgresp.NewRunLogRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatal().Err(err).Msg("mysql connect error")
		}
		repo = mysqlp.NewWorkflowRepository(db)
		runlogRepo = mysqlp.NewRunLogRepository(db)
	}
	defer db.Close()

	checkers := map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}

	var archive compliance.ReportArchive
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("minio init error")
		}
		archive = store
		checkers["object_store"] = &middleware.PingChecker{Ping: store.Ping}
	} else {
		log.Warn().Msg("object store not configured, reports will not be archived")
	}

	// With no API key the pipeline runs entirely on pattern matching.
	var gen domai.Generator
	if cfg.OpenAI.APIKey != "" {
		gen = openaiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxOutputTokens)
	} else {
		log.Warn().Msg("no OpenAI API key configured, running in fallback-only mode")
	}
	caller := genclient.New(gen, cfg.GenerationTimeout(), cfg.Analysis.MaxRetries, log)

	catalog := regdata.Default()
	svc := &pipeline.Service{
		Extractor: &extract.Service{
			Gen:           caller,
			Glossary:      regdata.DefaultGlossary(),
			ContentBudget: cfg.Analysis.ContentCharBudget,
			Log:           log,
		},
		Chain: &chain.Service{Gen: caller, Log: log},
		Sweep: &sweep.Service{
			Gen:            caller,
			Catalog:        catalog,
			MaxConcurrency: cfg.Analysis.MaxConcurrency,
			Log:            log,
		},
		Culture: &culture.Service{
			Gen:            caller,
			Regions:        regdata.DefaultRegions(),
			MaxConcurrency: cfg.Analysis.MaxConcurrency,
			Log:            log,
		},
		Report:         &report.Service{Gen: caller, Log: log},
		Catalog:        catalog,
		Repo:           repo,
		Archive:        archive,
		RunLog:         runlogRepo,
		Clock:          application.SystemClock{},
		MaxConcurrency: cfg.Analysis.MaxConcurrency,
		Log:            log,
	}

	handler := httpserver.NewRouter(svc, catalog, checkers, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
