package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/slug"
	"github.com/riskibarqy/scoreboard/internal/validation"
)

type TeamService struct {
	teamRepo team.Repository
	pipeline *validation.Pipeline
	logger   *logging.Logger
}

func NewTeamService(teamRepo team.Repository, pipeline *validation.Pipeline, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo: teamRepo,
		pipeline: pipeline,
		logger:   logger,
	}
}

// List returns every team, or the teams whose name contains search
// case-insensitively when search is not blank.
func (s *TeamService) List(ctx context.Context, search string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	search = strings.TrimSpace(search)
	if search == "" {
		items, err := s.teamRepo.List(ctx)
		return items, classify("list teams", err)
	}

	items, err := s.teamRepo.Search(ctx, search)
	return items, classify("search teams", err)
}

func (s *TeamService) Get(ctx context.Context, teamSlug string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	item, ok, err := s.teamRepo.GetBySlug(ctx, teamSlug)
	if err != nil {
		return team.Team{}, classify("get team", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team slug=%s", ErrNotFound, teamSlug)
	}
	return item, nil
}

// Create validates payload, derives the slug from the accepted name and stores
// the team. A taken name or slug is reported as ErrConflict.
func (s *TeamService) Create(ctx context.Context, payload validation.TeamPayload) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	patch, err := s.pipeline.ValidateTeam(ctx, payload, validation.Create)
	if err != nil {
		return team.Team{}, classify("validate team", err)
	}

	item := team.Team{Name: *patch.Name, Slug: slug.Generate(*patch.Name)}
	if patch.Description != nil {
		item.Description = *patch.Description
	}

	created, err := s.teamRepo.Insert(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "create team failed", "name", item.Name, "slug", item.Slug, "error", err)
		return team.Team{}, classify("create team", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", created.ID, "slug", created.Slug)
	return created, nil
}

// Update changes name and/or description. The slug keeps its value until an
// explicit resync.
func (s *TeamService) Update(ctx context.Context, teamSlug string, payload validation.TeamPayload) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	patch, err := s.pipeline.ValidateTeam(ctx, payload, validation.Update)
	if err != nil {
		return team.Team{}, classify("validate team", err)
	}

	updated, err := s.teamRepo.Update(ctx, teamSlug, patch)
	if err != nil {
		return team.Team{}, classify("update team", err)
	}
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, teamSlug string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if err := s.teamRepo.Delete(ctx, teamSlug); err != nil {
		return classify("delete team", err)
	}
	s.logger.InfoContext(ctx, "team deleted", "slug", teamSlug)
	return nil
}
