package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/bulk"
	qb "github.com/riskibarqy/scoreboard/internal/platform/querybuilder"
)

type GameRepository struct {
	pool *Pool
	opts options
}

func NewGameRepository(pool *Pool, opts ...Option) *GameRepository {
	return &GameRepository{pool: pool, opts: buildOptions(opts)}
}

func selectGames() *qb.SelectBuilder {
	return qb.Select(gameReadColumns...).
		From("games g").
		LeftJoin("teams home_team", "home_team.id = g.home").
		LeftJoin("teams away_team", "away_team.id = g.away")
}

// List returns the most recent games first. The limit is clamped with
// game.ClampLimit.
func (r *GameRepository) List(ctx context.Context, limit int) ([]game.Game, error) {
	query, args, err := selectGames().
		OrderBy("g.date DESC", "g.id DESC").
		Limit(game.ClampLimit(limit)).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select games query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return nil, crerr.Wrap(err, "select games")
	}

	var rows []gameTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, r.pool.fail(ctx, "select games", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	query, args, err := selectGames().Where(qb.Eq("g.id", id)).ToSQL()
	if err != nil {
		return game.Game{}, false, crerr.Wrap(err, "build get game query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return game.Game{}, false, crerr.Wrap(err, "get game by id")
	}

	var row gameTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, r.pool.fail(ctx, "get game by id", err)
	}

	return gameFromRow(row), true, nil
}

// Insert stores one game and returns it without team names.
func (r *GameRepository) Insert(ctx context.Context, item game.Game) (game.Game, error) {
	query, args, err := qb.InsertInto("games").
		Set("date", item.Date.UTC()).
		Set("home", item.HomeID).
		Set("away", item.AwayID).
		Set("home_score", item.HomeScore).
		Set("away_score", item.AwayScore).
		Returning(gameColumns...).
		ToSQL()
	if err != nil {
		return game.Game{}, crerr.Wrap(err, "build insert game query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return game.Game{}, crerr.Wrap(err, "insert game")
	}

	var row gameTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		return game.Game{}, r.classify(ctx, "insert game", err)
	}

	return gameFromRow(row), nil
}

// InsertGamedays flattens gamedays into games, resolving team names by exact
// match against teams. Games whose teams cannot be resolved are skipped, and a
// failing insert does not stop the others. Empty input returns
// game.ErrEmptyImport without touching the store.
func (r *GameRepository) InsertGamedays(ctx context.Context, gamedays []game.Gameday, teams []team.Team) (game.ImportResult, error) {
	if len(gamedays) == 0 || len(teams) == 0 {
		return game.ImportResult{}, game.ErrEmptyImport
	}

	ids := make(map[string]int64, len(teams))
	for _, t := range teams {
		ids[t.Name] = t.ID
	}

	var result game.ImportResult
	rows := make([]game.Game, 0, len(gamedays))
	for _, day := range gamedays {
		for _, g := range day.Games {
			homeID, homeOK := ids[g.Home.Name]
			awayID, awayOK := ids[g.Away.Name]
			if !homeOK || !awayOK {
				result.Unresolved++
				r.pool.logger.WarnContext(ctx, "skip gameday game with unknown team",
					"date", day.Date.Format(time.DateOnly),
					"home", g.Home.Name,
					"away", g.Away.Name,
				)
				continue
			}
			rows = append(rows, game.Game{
				Date:      day.Date,
				HomeID:    homeID,
				AwayID:    awayID,
				HomeScore: g.Home.Score,
				AwayScore: g.Away.Score,
			})
		}
	}

	outcomes, err := bulk.Run(ctx, r.opts.importWorkers, rows, r.Insert)
	if err != nil {
		return result, crerr.Wrap(err, "insert gamedays")
	}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			result.Failed++
			row := rows[outcome.Index]
			r.pool.logger.WarnContext(ctx, "skip gameday game insert",
				"date", row.Date.Format(time.DateOnly),
				"home_id", row.HomeID,
				"away_id", row.AwayID,
				"error", outcome.Err,
			)
			continue
		}
		result.Inserted++
	}

	return result, nil
}

// Update applies patch and returns the stored row without team names.
func (r *GameRepository) Update(ctx context.Context, id int64, patch game.Patch) (game.Game, error) {
	builder := qb.Update("games")
	if patch.Date != nil {
		builder.Set("date", patch.Date.UTC())
	}
	if patch.HomeID != nil {
		builder.Set("home", *patch.HomeID)
	}
	if patch.AwayID != nil {
		builder.Set("away", *patch.AwayID)
	}
	if patch.HomeScore != nil {
		builder.Set("home_score", *patch.HomeScore)
	}
	if patch.AwayScore != nil {
		builder.Set("away_score", *patch.AwayScore)
	}
	if !builder.HasSets() {
		item, ok, err := r.GetByID(ctx, id)
		if err != nil {
			return game.Game{}, err
		}
		if !ok {
			return game.Game{}, domainError(game.ErrNotFound, "update game", nil)
		}
		return item, nil
	}

	query, args, err := builder.
		Where(qb.Eq("id", id)).
		Returning(gameColumns...).
		ToSQL()
	if err != nil {
		return game.Game{}, crerr.Wrap(err, "build update game query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return game.Game{}, crerr.Wrap(err, "update game")
	}

	var row gameTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		return game.Game{}, r.classify(ctx, "update game", err)
	}

	return gameFromRow(row), nil
}

// Delete removes exactly one game; anything else reports game.ErrNotFound.
func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("games").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete game query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return crerr.Wrap(err, "delete game")
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.pool.fail(ctx, "delete game", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return r.pool.fail(ctx, "delete game", err)
	}
	if affected != 1 {
		return domainError(game.ErrNotFound, "delete game", nil)
	}
	return nil
}

func (r *GameRepository) classify(ctx context.Context, op string, err error) error {
	switch {
	case isNotFound(err):
		return domainError(game.ErrNotFound, op, nil)
	case isForeignKeyViolation(err):
		return domainError(game.ErrUnknownTeam, op, err)
	case isCheckViolation(err):
		return domainError(game.ErrRejected, op, err)
	}
	return r.pool.fail(ctx, op, err)
}
