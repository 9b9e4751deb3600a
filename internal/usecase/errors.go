package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
	"github.com/riskibarqy/scoreboard/internal/validation"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// classify maps domain and store errors to the use case sentinels. The original
// error stays in the chain so callers can still match on it.
func classify(op string, err error) error {
	var verrs validation.Errors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verrs):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, team.ErrNotFound), errors.Is(err, game.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, op, err)
	case errors.Is(err, team.ErrConflict), errors.Is(err, team.ErrInUse):
		return fmt.Errorf("%w: %s: %w", ErrConflict, op, err)
	case errors.Is(err, game.ErrUnknownTeam), errors.Is(err, game.ErrRejected), errors.Is(err, game.ErrEmptyImport):
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
}
