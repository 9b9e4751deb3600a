// Package cache decorates repositories with a read-through cache. Every write
// drops the entries it can affect before returning.
package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
	basecache "github.com/riskibarqy/scoreboard/internal/platform/cache"
)

const (
	teamPrefix = "team:"
	gamePrefix = "game:"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

// Search is not cached; the key space is unbounded.
func (r *TeamRepository) Search(ctx context.Context, query string) ([]team.Team, error) {
	return r.next.Search(ctx, query)
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamPrefix+"slug:"+slug, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamPrefix+"exists:"+strconv.FormatInt(id, 10), func(ctx context.Context) (any, error) {
		return r.next.Exists(ctx, id)
	})
	if err != nil {
		return false, err
	}

	exists, _ := v.(bool)
	return exists, nil
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) (team.Team, error) {
	defer r.invalidate(ctx)
	return r.next.Insert(ctx, item)
}

func (r *TeamRepository) InsertMany(ctx context.Context, items []team.Team) []team.Team {
	defer r.invalidate(ctx)
	return r.next.InsertMany(ctx, items)
}

func (r *TeamRepository) Update(ctx context.Context, slug string, patch team.Patch) (team.Team, error) {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, slug, patch)
}

func (r *TeamRepository) UpdateSlug(ctx context.Context, id int64, slug string) error {
	defer r.invalidate(ctx)
	return r.next.UpdateSlug(ctx, id, slug)
}

func (r *TeamRepository) Delete(ctx context.Context, slug string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, slug)
}

// invalidate also drops game entries because they carry team names.
func (r *TeamRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, teamPrefix)
	r.cache.DeletePrefix(ctx, gamePrefix)
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

type GameRepository struct {
	next  game.Repository
	cache *basecache.Store
}

func NewGameRepository(next game.Repository, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) List(ctx context.Context, limit int) ([]game.Game, error) {
	limit = game.ClampLimit(limit)
	v, err := r.cache.GetOrLoad(ctx, gamePrefix+"list:"+strconv.Itoa(limit), func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]game.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]game.Game)
	return append([]game.Game(nil), items...), nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, gamePrefix+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedGame{value: item, exists: exists}, nil
	})
	if err != nil {
		return game.Game{}, false, err
	}

	cached, _ := v.(cachedGame)
	return cached.value, cached.exists, nil
}

func (r *GameRepository) Insert(ctx context.Context, item game.Game) (game.Game, error) {
	defer r.invalidate(ctx)
	return r.next.Insert(ctx, item)
}

func (r *GameRepository) InsertGamedays(ctx context.Context, gamedays []game.Gameday, teams []team.Team) (game.ImportResult, error) {
	defer r.invalidate(ctx)
	return r.next.InsertGamedays(ctx, gamedays, teams)
}

func (r *GameRepository) Update(ctx context.Context, id int64, patch game.Patch) (game.Game, error) {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, id, patch)
}

func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, id)
}

func (r *GameRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, gamePrefix)
}

type cachedGame struct {
	value  game.Game
	exists bool
}
