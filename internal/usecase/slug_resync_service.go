package usecase

import (
	"context"

	"github.com/riskibarqy/scoreboard/internal/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/slug"
)

type SlugResyncResult struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// SlugResyncService regenerates team slugs from current names. Renames never
// touch slugs on their own; this is the explicit reconciliation step.
type SlugResyncService struct {
	teamRepo team.Repository
	logger   *logging.Logger
}

func NewSlugResyncService(teamRepo team.Repository, logger *logging.Logger) *SlugResyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SlugResyncService{teamRepo: teamRepo, logger: logger}
}

// Resync walks every team in id order. A team whose new slug collides with
// another team is logged and left unchanged; the walk continues.
func (s *SlugResyncService) Resync(ctx context.Context) (SlugResyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SlugResyncService.Resync")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return SlugResyncResult{}, classify("list teams for slug resync", err)
	}

	var result SlugResyncResult
	for _, item := range teams {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Checked++

		next := slug.Generate(item.Name)
		if next == item.Slug {
			continue
		}
		if err := s.teamRepo.UpdateSlug(ctx, item.ID, next); err != nil {
			result.Failed++
			s.logger.WarnContext(ctx, "update team slug failed",
				"team_id", item.ID,
				"from", item.Slug,
				"to", next,
				"error", err,
			)
			continue
		}

		result.Updated++
		s.logger.InfoContext(ctx, "team slug updated", "team_id", item.ID, "from", item.Slug, "to", next)
	}

	return result, nil
}
