package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
)

func TestTeamRepositoryInsertDuplicateKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(nil)

	if _, err := repo.Insert(ctx, team.Team{Name: "Fram", Slug: "fram"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := repo.Insert(ctx, team.Team{Name: "Fram", Slug: "fram"}); !errors.Is(err, team.ErrConflict) {
		t.Fatalf("expected team.ErrConflict, got %v", err)
	}

	items, _ := repo.List(ctx)
	if len(items) != 1 {
		t.Fatalf("expected exactly one stored team, got %d", len(items))
	}
}

func TestTeamRepositorySearchIsCaseInsensitive(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	got, err := repo.Search(context.Background(), "LIÐIÐ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %+v", got)
	}
}

func TestTeamDeleteRestrictedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	teams := NewTeamRepository(SeedTeams())
	games := NewGameRepository(teams, nil)

	created, err := games.Insert(ctx, game.Game{Date: time.Now(), HomeID: 1, AwayID: 2, HomeScore: 1})
	if err != nil {
		t.Fatalf("insert game: %v", err)
	}

	if err := teams.Delete(ctx, "boltalidid"); !errors.Is(err, team.ErrInUse) {
		t.Fatalf("expected team.ErrInUse, got %v", err)
	}
	if err := games.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if err := teams.Delete(ctx, "boltalidid"); err != nil {
		t.Fatalf("delete team: %v", err)
	}
}

func TestGameRepositoryListOrdersAndJoinsNames(t *testing.T) {
	ctx := context.Background()
	teams := NewTeamRepository(SeedTeams())
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	games := NewGameRepository(teams, []game.Game{
		{Date: base, HomeID: 1, AwayID: 2},
		{Date: base.AddDate(0, 0, 2), HomeID: 3, AwayID: 4},
		{Date: base.AddDate(0, 0, 1), HomeID: 5, AwayID: 6},
	})

	got, err := games.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("expected newest first, got ids %d,%d", got[0].ID, got[1].ID)
	}
	if got[0].HomeName != "Skotföstu kempurnar" || got[0].AwayName != "Markaskorarnir" {
		t.Fatalf("unexpected names: %+v", got[0])
	}
}

func TestGameRepositoryDeleteMissing(t *testing.T) {
	games := NewGameRepository(NewTeamRepository(SeedTeams()), []game.Game{{Date: time.Now(), HomeID: 1, AwayID: 2}})

	if err := games.Delete(context.Background(), 42); !errors.Is(err, game.ErrNotFound) {
		t.Fatalf("expected game.ErrNotFound, got %v", err)
	}
	if games.Len() != 1 {
		t.Fatalf("expected table unchanged, got %d games", games.Len())
	}
}

func TestGameRepositoryInsertGamedays(t *testing.T) {
	ctx := context.Background()
	teams := NewTeamRepository(SeedTeams())
	games := NewGameRepository(teams, nil)
	all, _ := teams.List(ctx)

	if _, err := games.InsertGamedays(ctx, nil, all); !errors.Is(err, game.ErrEmptyImport) {
		t.Fatalf("expected game.ErrEmptyImport, got %v", err)
	}

	result, err := games.InsertGamedays(ctx, []game.Gameday{{
		Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Games: []game.GamedayGame{
			{Home: game.Side{Name: "Boltaliðið", Score: 2}, Away: game.Side{Name: "Óhemjurnar", Score: 1}},
			{Home: game.Side{Name: "Nobody", Score: 0}, Away: game.Side{Name: "Óhemjurnar", Score: 0}},
		},
	}}, all)
	if err != nil {
		t.Fatalf("insert gamedays: %v", err)
	}
	if result.Inserted != 1 || result.Unresolved != 1 || result.Total() != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}
