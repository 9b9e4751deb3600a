package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/domain/team"
)

// GameRepository keeps games in memory. Team references are checked against
// the given TeamRepository, and teams referenced by games cannot be deleted.
type GameRepository struct {
	mu     sync.RWMutex
	nextID int64
	games  map[int64]game.Game
	teams  *TeamRepository
}

func NewGameRepository(teams *TeamRepository, games []game.Game) *GameRepository {
	r := &GameRepository{games: make(map[int64]game.Game, len(games)), teams: teams}
	for _, item := range games {
		if item.ID == 0 {
			r.nextID++
			item.ID = r.nextID
		}
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.games[item.ID] = item
	}

	teams.mu.Lock()
	teams.inUse = r.references
	teams.mu.Unlock()

	return r
}

func (r *GameRepository) List(_ context.Context, limit int) ([]game.Game, error) {
	r.mu.RLock()
	out := make([]game.Game, 0, len(r.games))
	for _, item := range r.games {
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})

	if limit = game.ClampLimit(limit); len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i] = r.withNames(out[i])
	}
	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, id int64) (game.Game, bool, error) {
	r.mu.RLock()
	item, ok := r.games[id]
	r.mu.RUnlock()

	if !ok {
		return game.Game{}, false, nil
	}
	return r.withNames(item), true, nil
}

func (r *GameRepository) Insert(_ context.Context, item game.Game) (game.Game, error) {
	if !r.knownTeams(item) {
		return game.Game{}, game.ErrUnknownTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	item.HomeName, item.AwayName = "", ""
	r.games[item.ID] = item
	return item, nil
}

func (r *GameRepository) InsertGamedays(ctx context.Context, gamedays []game.Gameday, teams []team.Team) (game.ImportResult, error) {
	if len(gamedays) == 0 || len(teams) == 0 {
		return game.ImportResult{}, game.ErrEmptyImport
	}

	ids := make(map[string]int64, len(teams))
	for _, t := range teams {
		ids[t.Name] = t.ID
	}

	var result game.ImportResult
	for _, day := range gamedays {
		for _, g := range day.Games {
			homeID, homeOK := ids[g.Home.Name]
			awayID, awayOK := ids[g.Away.Name]
			if !homeOK || !awayOK {
				result.Unresolved++
				continue
			}
			_, err := r.Insert(ctx, game.Game{
				Date:      day.Date,
				HomeID:    homeID,
				AwayID:    awayID,
				HomeScore: g.Home.Score,
				AwayScore: g.Away.Score,
			})
			if err != nil {
				result.Failed++
				continue
			}
			result.Inserted++
		}
	}
	return result, nil
}

func (r *GameRepository) Update(_ context.Context, id int64, patch game.Patch) (game.Game, error) {
	r.mu.RLock()
	current, ok := r.games[id]
	r.mu.RUnlock()
	if !ok {
		return game.Game{}, game.ErrNotFound
	}

	next := patch.Apply(current)
	if !r.knownTeams(next) {
		return game.Game{}, game.ErrUnknownTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[id]; !ok {
		return game.Game{}, game.ErrNotFound
	}
	r.games[id] = next
	return next, nil
}

func (r *GameRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[id]; !ok {
		return game.ErrNotFound
	}
	delete(r.games, id)
	return nil
}

// Len reports how many games are stored.
func (r *GameRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.games)
}

func (r *GameRepository) knownTeams(item game.Game) bool {
	_, homeOK := r.teams.get(item.HomeID)
	_, awayOK := r.teams.get(item.AwayID)
	return homeOK && awayOK
}

func (r *GameRepository) withNames(item game.Game) game.Game {
	if home, ok := r.teams.get(item.HomeID); ok {
		item.HomeName = home.Name
	}
	if away, ok := r.teams.get(item.AwayID); ok {
		item.AwayName = away.Name
	}
	return item
}

func (r *GameRepository) references(teamID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.games {
		if item.HomeID == teamID || item.AwayID == teamID {
			return true
		}
	}
	return false
}
