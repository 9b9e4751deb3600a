package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	gamemock "github.com/riskibarqy/scoreboard/internal/mocks/domain/game"
	teammock "github.com/riskibarqy/scoreboard/internal/mocks/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/validation"
	"github.com/stretchr/testify/mock"
)

func newGameFixture() (*GameService, *memory.GameRepository) {
	teams := memory.NewTeamRepository(memory.SeedTeams())
	games := memory.NewGameRepository(teams, nil)
	return NewGameService(games, newTestPipeline(teams), logging.NewNop()), games
}

func TestGameService_CreateFillsTeamNames(t *testing.T) {
	t.Parallel()

	svc, _ := newGameFixture()
	created, err := svc.Create(context.Background(), validation.GamePayload{
		Date:      ptr("2026-10-12T17:00:00Z"),
		Home:      ptr(int64(1)),
		Away:      ptr(int64(12)),
		HomeScore: ptr(2),
		AwayScore: ptr(2),
	})
	mustNoErr(t, err, "create game")

	if created.ID == 0 || created.HomeName != "Boltaliðið" || created.AwayName != "Hraðaliðið" {
		t.Fatalf("unexpected game: %+v", created)
	}
}

func TestGameService_CreateRejectedBeforeStorage(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	games := gamemock.NewRepository(t)
	svc := NewGameService(games, newTestPipeline(teams), logging.NewNop())
	teams.On("Exists", mock.Anything, int64(3)).Return(true, nil).Once()

	_, err := svc.Create(context.Background(), validation.GamePayload{
		Date:      ptr("2026-10-12T17:00:00Z"),
		Home:      ptr(int64(3)),
		Away:      ptr(int64(3)),
		HomeScore: ptr(100),
		AwayScore: ptr(99),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) || !verrs.Has("away") || !verrs.Has("home_score") || verrs.Has("away_score") {
		t.Fatalf("unexpected field errors: %v", err)
	}
	games.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGameService_UpdateMergesWithStoredGame(t *testing.T) {
	t.Parallel()

	svc, _ := newGameFixture()
	created, err := svc.Create(context.Background(), validation.GamePayload{
		Date:      ptr("2026-10-12"),
		Home:      ptr(int64(1)),
		Away:      ptr(int64(2)),
		HomeScore: ptr(0),
		AwayScore: ptr(0),
	})
	mustNoErr(t, err, "create game")

	updated, err := svc.Update(context.Background(), created.ID, validation.GamePayload{AwayScore: ptr(3)})
	mustNoErr(t, err, "update game")
	if updated.AwayScore != 3 || updated.HomeID != 1 || updated.AwayName != "Dripplararnir" {
		t.Fatalf("unexpected game: %+v", updated)
	}

	_, err = svc.Update(context.Background(), created.ID, validation.GamePayload{Away: ptr(int64(1))})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected clash with stored home, got %v", err)
	}
}

func TestGameService_UpdateMissing(t *testing.T) {
	t.Parallel()

	svc, _ := newGameFixture()
	if _, err := svc.Update(context.Background(), 404, validation.GamePayload{HomeScore: ptr(1)}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGameService_DeleteMissingLeavesGames(t *testing.T) {
	t.Parallel()

	svc, games := newGameFixture()
	_, err := svc.Create(context.Background(), validation.GamePayload{
		Date:      ptr("2026-10-01T10:00"),
		Home:      ptr(int64(4)),
		Away:      ptr(int64(5)),
		HomeScore: ptr(1),
		AwayScore: ptr(0),
	})
	mustNoErr(t, err, "create game")

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if games.Len() != 1 {
		t.Fatalf("expected games unchanged, got %d", games.Len())
	}
}

func TestGameService_ListClampsLimit(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	games := gamemock.NewRepository(t)
	svc := NewGameService(games, newTestPipeline(teams), logging.NewNop())

	games.On("List", mock.Anything, game.MaxListLimit).Return([]game.Game{}, nil).Twice()

	_, err := svc.List(context.Background(), 500)
	mustNoErr(t, err, "list with large limit")
	_, err = svc.List(context.Background(), 0)
	mustNoErr(t, err, "list with zero limit")
}
