package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/slug"
)

// ImportService bulk loads fixture data. Imported names are trusted and do not
// go through the request validation pipeline.
type ImportService struct {
	teamRepo team.Repository
	gameRepo game.Repository
	logger   *logging.Logger
}

func NewImportService(teamRepo team.Repository, gameRepo game.Repository, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		logger:   logger,
	}
}

// ImportTeams inserts one team per non-blank name with a generated slug and
// returns the teams that were stored. Names already present are skipped.
func (s *ImportService) ImportTeams(ctx context.Context, names []string) []team.Team {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportTeams")
	defer span.End()

	items := make([]team.Team, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		items = append(items, team.Team{Name: name, Slug: slug.Generate(name)})
	}

	inserted := s.teamRepo.InsertMany(ctx, items)
	s.logger.InfoContext(ctx, "teams imported",
		"requested", len(items),
		"inserted", len(inserted),
	)
	return inserted
}

// ImportGamedays stores the games of every gameday, resolving team names
// against the stored teams.
func (s *ImportService) ImportGamedays(ctx context.Context, gamedays []game.Gameday) (game.ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportGamedays")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return game.ImportResult{}, classify("list teams for import", err)
	}

	result, err := s.gameRepo.InsertGamedays(ctx, gamedays, teams)
	if err != nil {
		return result, classify("import gamedays", err)
	}

	s.logger.InfoContext(ctx, "gamedays imported",
		"gamedays", len(gamedays),
		"inserted", result.Inserted,
		"unresolved", result.Unresolved,
		"failed", result.Failed,
	)
	return result, nil
}
