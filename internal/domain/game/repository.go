package game

import (
	"context"

	"github.com/riskibarqy/scoreboard/internal/domain/team"
)

// Repository describes game persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, limit int) ([]Game, error)
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	Insert(ctx context.Context, item Game) (Game, error)
	InsertGamedays(ctx context.Context, gamedays []Gameday, teams []team.Team) (ImportResult, error)
	Update(ctx context.Context, id int64, patch Patch) (Game, error)
	Delete(ctx context.Context, id int64) error
}
