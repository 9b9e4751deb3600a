package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
	repocache "github.com/riskibarqy/scoreboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/scoreboard/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/scoreboard/internal/platform/cache"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/usecase"
	"github.com/riskibarqy/scoreboard/internal/validation"
)

// Store bundles the opened connection pool with the repositories built on it.
type Store struct {
	Pool  *postgres.Pool
	Teams team.Repository
	Games game.Repository
}

// OpenStore creates and opens the pool. The caller owns the returned store and
// must Close it at shutdown.
func OpenStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Store, error) {
	pool, err := postgres.NewPool(postgres.PoolConfig{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, logger.Named("postgres"))
	if err != nil {
		return nil, err
	}
	if err := pool.Open(ctx); err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}

	opts := []postgres.Option{postgres.WithImportWorkers(cfg.ImportWorkers)}
	teams, games := withCache(cfg,
		postgres.NewTeamRepository(pool, opts...),
		postgres.NewGameRepository(pool, opts...),
	)
	return &Store{Pool: pool, Teams: teams, Games: games}, nil
}

// withCache wraps both repositories in one shared read-through cache when
// CACHE_ENABLED is set. Team writes drop cached games since games carry names.
func withCache(cfg config.Config, teams team.Repository, games game.Repository) (team.Repository, game.Repository) {
	if !cfg.CacheEnabled {
		return teams, games
	}
	store := basecache.NewStore(cfg.CacheTTL, nil)
	return repocache.NewTeamRepository(teams, store), repocache.NewGameRepository(games, store)
}

func (s *Store) Close() error {
	return s.Pool.Close()
}

func NewHTTPServer(
	cfg config.Config,
	teamRepo team.Repository,
	gameRepo game.Repository,
	readiness httpapi.ReadinessChecker,
	logger *logging.Logger,
) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	pipeline := validation.NewPipeline(teamRepo, validation.WithLogger(logger.Named("validation")))
	teamSvc := usecase.NewTeamService(teamRepo, pipeline, logger)
	gameSvc := usecase.NewGameService(gameRepo, pipeline, logger)

	handler := httpapi.NewHandler(teamSvc, gameSvc, readiness, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

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
