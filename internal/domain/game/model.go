package game

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("game not found")
	// ErrUnknownTeam means home or away does not reference a stored team.
	ErrUnknownTeam = errors.New("game references an unknown team")
	// ErrEmptyImport means there were no gamedays or no teams to resolve against.
	ErrEmptyImport = errors.New("nothing to import")
	// ErrRejected means the store refused the row, e.g. a score out of range.
	ErrRejected = errors.New("game rejected by storage constraints")
)

const (
	MaxListLimit = 100
	MinScore     = 0
	MaxScore     = 99
	// MaxAgeMonths bounds how far back a new game's date may lie.
	MaxAgeMonths = 2
)

// Game is one result between two different teams.
type Game struct {
	ID        int64
	Date      time.Time
	HomeID    int64
	AwayID    int64
	HomeName  string
	AwayName  string
	HomeScore int
	AwayScore int
}

// Patch carries the fields of a partial update; nil means unchanged.
type Patch struct {
	Date      *time.Time
	HomeID    *int64
	AwayID    *int64
	HomeScore *int
	AwayScore *int
}

// Apply returns g with the patched fields replaced.
func (p Patch) Apply(g Game) Game {
	if p.Date != nil {
		g.Date = *p.Date
	}
	if p.HomeID != nil {
		g.HomeID = *p.HomeID
	}
	if p.AwayID != nil {
		g.AwayID = *p.AwayID
	}
	if p.HomeScore != nil {
		g.HomeScore = *p.HomeScore
	}
	if p.AwayScore != nil {
		g.AwayScore = *p.AwayScore
	}
	return g
}

// ClampLimit maps a requested page size into [1, MaxListLimit]; non-positive
// values select MaxListLimit.
func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
