package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/scoreboard/internal/domain/team"
)

// TeamRepository keeps teams in memory with the same uniqueness and
// referential rules as the postgres schema.
type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	teams  map[int64]team.Team
	// inUse reports whether games reference a team id; set by GameRepository.
	inUse func(id int64) bool
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{teams: make(map[int64]team.Team, len(teams))}
	for _, item := range teams {
		if item.ID == 0 {
			r.nextID++
			item.ID = r.nextID
		}
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.teams[item.ID] = item
	}
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(team.Team) bool { return true }), nil
}

func (r *TeamRepository) Search(_ context.Context, query string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	return r.sortedLocked(func(item team.Team) bool {
		return strings.Contains(strings.ToLower(item.Name), needle)
	}), nil
}

func (r *TeamRepository) GetBySlug(_ context.Context, slug string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.bySlugLocked(slug)
	return item, ok, nil
}

func (r *TeamRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.teams[id]
	return ok, nil
}

func (r *TeamRepository) Insert(_ context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.takenLocked(0, item.Name, item.Slug) {
		return team.Team{}, team.ErrConflict
	}

	r.nextID++
	item.ID = r.nextID
	r.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) InsertMany(ctx context.Context, items []team.Team) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		created, err := r.Insert(ctx, item)
		if err != nil {
			continue
		}
		out = append(out, created)
	}
	return out
}

func (r *TeamRepository) Update(_ context.Context, slug string, patch team.Patch) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.bySlugLocked(slug)
	if !ok {
		return team.Team{}, team.ErrNotFound
	}
	if patch.Name != nil {
		if r.takenLocked(item.ID, *patch.Name, "") {
			return team.Team{}, team.ErrConflict
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}

	r.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) UpdateSlug(_ context.Context, id int64, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.teams[id]
	if !ok {
		return team.ErrNotFound
	}
	if r.takenLocked(id, "", slug) {
		return team.ErrConflict
	}

	item.Slug = slug
	r.teams[id] = item
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.bySlugLocked(slug)
	if !ok {
		return team.ErrNotFound
	}
	if r.inUse != nil && r.inUse(item.ID) {
		return team.ErrInUse
	}

	delete(r.teams, item.ID)
	return nil
}

func (r *TeamRepository) get(id int64) (team.Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[id]
	return item, ok
}

func (r *TeamRepository) bySlugLocked(slug string) (team.Team, bool) {
	for _, item := range r.teams {
		if item.Slug == slug {
			return item, true
		}
	}
	return team.Team{}, false
}

func (r *TeamRepository) takenLocked(exceptID int64, name, slug string) bool {
	for id, item := range r.teams {
		if id == exceptID {
			continue
		}
		if (name != "" && item.Name == name) || (slug != "" && item.Slug == slug) {
			return true
		}
	}
	return false
}

func (r *TeamRepository) sortedLocked(keep func(team.Team) bool) []team.Team {
	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
