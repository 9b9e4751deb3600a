package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/validation"
)

type GameService struct {
	gameRepo game.Repository
	pipeline *validation.Pipeline
	logger   *logging.Logger
}

func NewGameService(gameRepo game.Repository, pipeline *validation.Pipeline, logger *logging.Logger) *GameService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameService{
		gameRepo: gameRepo,
		pipeline: pipeline,
		logger:   logger,
	}
}

// List returns the latest games first; limit is clamped to [1, 100].
func (s *GameService) List(ctx context.Context, limit int) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.List")
	defer span.End()

	items, err := s.gameRepo.List(ctx, game.ClampLimit(limit))
	return items, classify("list games", err)
}

func (s *GameService) Get(ctx context.Context, id int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Get")
	defer span.End()

	item, ok, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return game.Game{}, classify("get game", err)
	}
	if !ok {
		return game.Game{}, fmt.Errorf("%w: game id=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *GameService) Create(ctx context.Context, payload validation.GamePayload) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Create")
	defer span.End()

	patch, err := s.pipeline.ValidateGame(ctx, payload, validation.Create, game.Game{})
	if err != nil {
		return game.Game{}, classify("validate game", err)
	}

	created, err := s.gameRepo.Insert(ctx, patch.Apply(game.Game{}))
	if err != nil {
		s.logger.WarnContext(ctx, "create game failed", "error", err)
		return game.Game{}, classify("create game", err)
	}

	s.logger.InfoContext(ctx, "game created", "game_id", created.ID)
	return s.reload(ctx, created)
}

func (s *GameService) Update(ctx context.Context, id int64, payload validation.GamePayload) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return game.Game{}, err
	}

	patch, err := s.pipeline.ValidateGame(ctx, payload, validation.Update, current)
	if err != nil {
		return game.Game{}, classify("validate game", err)
	}

	updated, err := s.gameRepo.Update(ctx, id, patch)
	if err != nil {
		return game.Game{}, classify("update game", err)
	}
	return s.reload(ctx, updated)
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Delete")
	defer span.End()

	if err := s.gameRepo.Delete(ctx, id); err != nil {
		return classify("delete game", err)
	}
	s.logger.InfoContext(ctx, "game deleted", "game_id", id)
	return nil
}

// reload fetches the stored game again to fill the joined team names. The
// written row is returned as is when the read fails.
func (s *GameService) reload(ctx context.Context, written game.Game) (game.Game, error) {
	item, ok, err := s.gameRepo.GetByID(ctx, written.ID)
	if err != nil || !ok {
		s.logger.WarnContext(ctx, "reload game failed", "game_id", written.ID, "found", ok, "error", err)
		return written, nil
	}
	return item, nil
}
