package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/bulk"
	qb "github.com/riskibarqy/scoreboard/internal/platform/querybuilder"
)

type TeamRepository struct {
	pool *Pool
	opts options
}

func NewTeamRepository(pool *Pool, opts ...Option) *TeamRepository {
	return &TeamRepository{pool: pool, opts: buildOptions(opts)}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").OrderBy("id").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select teams query")
	}
	return r.selectTeams(ctx, "select teams", query, args)
}

func (r *TeamRepository) Search(ctx context.Context, search string) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.ContainsFold("name", search)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build search teams query")
	}
	return r.selectTeams(ctx, "search teams", query, args)
}

func (r *TeamRepository) selectTeams(ctx context.Context, op, query string, args []any) ([]team.Team, error) {
	db, err := r.pool.DB()
	if err != nil {
		return nil, crerr.Wrap(err, op)
	}

	var rows []teamTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, r.pool.fail(ctx, op, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("slug", slug)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build get team query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "get team by slug")
	}

	var row teamTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, r.pool.fail(ctx, "get team by slug", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Select("id").From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build team exists query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return false, crerr.Wrap(err, "team exists")
	}

	var found int64
	if err := db.GetContext(ctx, &found, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, r.pool.fail(ctx, "team exists", err)
	}
	return true, nil
}

// Insert stores a new team. A name or slug that is already taken inserts
// nothing and reports team.ErrConflict; the existing row is not returned.
func (r *TeamRepository) Insert(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertInto("teams").
		Set("name", item.Name).
		Set("slug", item.Slug).
		Set("description", nullString(item.Description)).
		OnConflictDoNothing().
		Returning(teamColumns...).
		ToSQL()
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "build insert team query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "insert team")
	}

	var row teamTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		switch {
		case isNotFound(err):
			return team.Team{}, domainError(team.ErrConflict, "insert team", nil)
		case isUniqueViolation(err):
			return team.Team{}, domainError(team.ErrConflict, "insert team", err)
		}
		return team.Team{}, r.pool.fail(ctx, "insert team", err)
	}

	return teamFromRow(row), nil
}

// InsertMany inserts every team independently and returns the ones stored.
// Failed items are logged and skipped.
func (r *TeamRepository) InsertMany(ctx context.Context, items []team.Team) []team.Team {
	outcomes, err := bulk.Run(ctx, r.opts.importWorkers, items, r.Insert)
	if err != nil {
		r.pool.logger.ErrorContext(ctx, "bulk insert teams failed", "error", err)
		return nil
	}

	out := make([]team.Team, 0, len(items))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			r.pool.logger.WarnContext(ctx, "skip team insert",
				"name", items[outcome.Index].Name,
				"error", outcome.Err,
			)
			continue
		}
		out = append(out, outcome.Value)
	}
	return out
}

// Update changes name and/or description. The slug is left as is.
func (r *TeamRepository) Update(ctx context.Context, slug string, patch team.Patch) (team.Team, error) {
	builder := qb.Update("teams")
	if patch.Name != nil {
		builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder.Set("description", nullString(*patch.Description))
	}
	if !builder.HasSets() {
		item, ok, err := r.GetBySlug(ctx, slug)
		if err != nil {
			return team.Team{}, err
		}
		if !ok {
			return team.Team{}, domainError(team.ErrNotFound, "update team", nil)
		}
		return item, nil
	}

	query, args, err := builder.
		Where(qb.Eq("slug", slug)).
		Returning(teamColumns...).
		ToSQL()
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "build update team query")
	}

	db, err := r.pool.DB()
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "update team")
	}

	var row teamTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		switch {
		case isNotFound(err):
			return team.Team{}, domainError(team.ErrNotFound, "update team", nil)
		case isUniqueViolation(err):
			return team.Team{}, domainError(team.ErrConflict, "update team", err)
		}
		return team.Team{}, r.pool.fail(ctx, "update team", err)
	}

	return teamFromRow(row), nil
}

func (r *TeamRepository) UpdateSlug(ctx context.Context, id int64, slug string) error {
	query, args, err := qb.Update("teams").
		Set("slug", slug).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update team slug query")
	}
	return r.execOne(ctx, "update team slug", query, args)
}

// Delete removes a team. Teams still referenced by games report team.ErrInUse.
func (r *TeamRepository) Delete(ctx context.Context, slug string) error {
	query, args, err := qb.DeleteFrom("teams").Where(qb.Eq("slug", slug)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete team query")
	}
	return r.execOne(ctx, "delete team", query, args)
}

func (r *TeamRepository) execOne(ctx context.Context, op, query string, args []any) error {
	db, err := r.pool.DB()
	if err != nil {
		return crerr.Wrap(err, op)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domainError(team.ErrConflict, op, err)
		case isForeignKeyViolation(err):
			return domainError(team.ErrInUse, op, err)
		}
		return r.pool.fail(ctx, op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.pool.fail(ctx, op, err)
	}
	if affected != 1 {
		return domainError(team.ErrNotFound, op, nil)
	}
	return nil
}
