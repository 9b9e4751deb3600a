package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/scoreboard/internal/config"
	repocache "github.com/riskibarqy/scoreboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

func TestNewHTTPServer(t *testing.T) {
	teams := memory.NewTeamRepository(memory.SeedTeams())
	games := memory.NewGameRepository(teams, nil)

	cfg := config.Config{
		HTTPAddr:           ":3000",
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       5 * time.Second,
	}
	srv, err := NewHTTPServer(cfg, teams, games, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	if srv.Addr != ":3000" || srv.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected server settings: addr=%q read=%s", srv.Addr, srv.ReadTimeout)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/boltalidid", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected seeded team to be served, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected docs to be disabled, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	teams := memory.NewTeamRepository(nil)
	if _, err := NewHTTPServer(config.Config{}, teams, memory.NewGameRepository(teams, nil), nil, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestWithCache(t *testing.T) {
	teams := memory.NewTeamRepository(memory.SeedTeams())
	games := memory.NewGameRepository(teams, nil)

	plainTeams, plainGames := withCache(config.Config{}, teams, games)
	if plainTeams != teams || plainGames != games {
		t.Fatalf("expected repositories unchanged when cache is disabled")
	}

	cachedTeams, cachedGames := withCache(config.Config{CacheEnabled: true, CacheTTL: time.Minute}, teams, games)
	if _, ok := cachedTeams.(*repocache.TeamRepository); !ok {
		t.Fatalf("expected cached team repository, got %T", cachedTeams)
	}
	if _, ok := cachedGames.(*repocache.GameRepository); !ok {
		t.Fatalf("expected cached game repository, got %T", cachedGames)
	}
}
