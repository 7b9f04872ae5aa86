package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/candidates"
	"ats-backend/internal/queue"
	"ats-backend/internal/scoring"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server"
	"ats-backend/internal/shared/storage/db"
	"ats-backend/internal/tenants"
)

// App holds shared dependencies for the API and worker processes.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Queue  queue.Client

	TenantsRepo    tenants.Repo
	CandidatesRepo candidates.Repo
	ScoresRepo     scoring.Repo
	WeightsRepo    scoring.WeightsRepo

	ScoringService    *scoring.Service
	ScoringHandler    *scoring.Handler
	CandidatesHandler *candidates.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	return build(cfg, db.DefaultServerOptions())
}

// BuildWorker is Build with a smaller database pool suited to the queue
// worker process.
func BuildWorker(cfg config.Config) (*App, error) {
	return build(cfg, db.DefaultWorkerOptions())
}

func build(cfg config.Config, dbOpts db.Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg, dbOpts)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Queue:  queueClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		ScoringHandler:    app.ScoringHandler,
		CandidatesHandler: app.CandidatesHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config, dbOpts db.Options) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(dbOpts)
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("ATS_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.TenantsRepo = &tenants.PGRepo{DB: app.DB}
		app.CandidatesRepo = &candidates.PGRepo{DB: app.DB}
		app.ScoresRepo = &scoring.PGRepo{DB: app.DB}
		app.WeightsRepo = &scoring.WeightsPGRepo{DB: app.DB}
	} else {
		app.TenantsRepo = tenants.NewMemoryRepo()
		app.CandidatesRepo = candidates.NewMemoryRepo()
		app.ScoresRepo = scoring.NewMemoryRepo()
		app.WeightsRepo = scoring.NewWeightsMemoryRepo()
	}

	app.ScoringService = &scoring.Service{
		Tenants:    app.TenantsRepo,
		Candidates: app.CandidatesRepo,
		Scores:     app.ScoresRepo,
		Weights:    app.WeightsRepo,
		MaxWorkers: app.Config.RankingMaxWorkers,
	}
	app.ScoringHandler = scoring.NewHandler(app.ScoringService)
	app.CandidatesHandler = candidates.NewHandler(app.TenantsRepo, app.CandidatesRepo, app.Queue)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
