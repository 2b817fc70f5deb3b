package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/wmfl-standings/external/wmfl"
	"github.com/riskibarqy/wmfl-standings/internal/config"
	"github.com/riskibarqy/wmfl-standings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/wmfl-standings/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/wmfl-standings/internal/interfaces/httpapi"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
	"github.com/riskibarqy/wmfl-standings/internal/platform/resilience"
	"github.com/riskibarqy/wmfl-standings/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	dbPingTimeout     = 5 * time.Second
	dbMaxOpenConns    = 10
	dbMaxIdleConns    = 5
	dbConnMaxLifetime = 30 * time.Minute
	dbConnMaxIdleTime = 5 * time.Minute
)

// Services bundles the use cases shared by the HTTP server and the CLI.
type Services struct {
	Import *usecase.ImportService
	Teams  *usecase.TeamService
	Sync   *usecase.SyncService

	closeFn func() error
}

// Close releases the storage backend.
func (s *Services) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// NewServices wires storage, the standings client and the use cases.
// An empty DB_URL selects the seeded in-memory store.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	sessions, closeFn, err := newSessionProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	breaker := resilience.DefaultCircuitBreakerConfig()
	breaker.Enabled = cfg.WMFLCircuitEnabled
	breaker.FailureThreshold = cfg.WMFLCircuitFailureCount
	breaker.OpenTimeout = cfg.WMFLCircuitOpenTimeout

	client := wmfl.NewClient(wmfl.ClientConfig{
		URLTemplate:    cfg.WMFLURLTemplate,
		UserAgent:      cfg.WMFLUserAgent,
		Timeout:        cfg.WMFLTimeout,
		InsecureTLS:    cfg.WMFLInsecureTLS,
		Logger:         logger.With("component", "wmfl_client"),
		CircuitBreaker: breaker,
	})

	return &Services{
		Import: usecase.NewImportService(client, sessions, usecase.ImportConfig{
			DefaultTournamentID: cfg.DefaultTournamentID,
			Season:              cfg.DefaultSeason,
		}, logger),
		Teams: usecase.NewTeamService(sessions, usecase.TeamDefaults{
			TournamentID: cfg.DefaultTournamentID,
			Season:       cfg.DefaultSeason,
		}, logger),
		Sync: usecase.NewSyncService(sessions, usecase.SyncConfig{
			MaxWorkers: cfg.SyncMaxWorkers,
			LogLimit:   cfg.SyncLogLimit,
		}, logger),
		closeFn: closeFn,
	}, nil
}

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if services == nil {
		return nil, fmt.Errorf("services cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}

	handler := httpapi.NewHandler(services.Import, services.Teams, services.Sync, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func newSessionProvider(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.SessionProvider, func() error, error) {
	if cfg.DBURL == "" {
		logger.Warn("DB_URL is empty, using in-memory storage")
		provider := memory.NewSessionProvider(
			memory.NewTeamRepository(memory.SeedTeams(cfg.DefaultTournamentID, cfg.DefaultSeason)),
			memory.NewSyncLogRepository(),
		)
		return provider, func() error { return nil }, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("postgres storage ready", "db_name", dbNameFromURL(cfg.DBURL))

	return postgres.NewSessionProvider(db), db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", PostgresURL(cfg),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)
	db.SetConnMaxIdleTime(dbConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
