package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
)

// GamePayload is a game as submitted by clients. Nil fields were absent.
type GamePayload struct {
	Date      *string `json:"date"`
	Home      *int64  `json:"home" validate:"omitnil,gt=0"`
	Away      *int64  `json:"away" validate:"omitnil,gt=0"`
	HomeScore *int    `json:"home_score" validate:"omitnil,min=0,max=99"`
	AwayScore *int    `json:"away_score" validate:"omitnil,min=0,max=99"`
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// parseISODate accepts the strict ISO 8601 calendar forms with a 'T'
// separator. Values without a zone are UTC.
func parseISODate(value string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ValidateGame checks payload and returns the fields to store as a patch.
// current is the stored game for Update and is ignored for Create; home and
// away are compared after merging the payload into it. A failing existence
// lookup aborts with that error instead of a field error.
func (p *Pipeline) ValidateGame(ctx context.Context, payload GamePayload, mode Mode, current game.Game) (game.Patch, error) {
	var (
		errs  Errors
		patch game.Patch
	)

	rules, err := p.checkStruct(ctx, payload)
	if err != nil {
		return game.Patch{}, err
	}

	// date
	switch {
	case payload.Date == nil:
		if mode == Create {
			errs.add("date", "date is required")
		}
	default:
		if date, msg := p.checkDate(*payload.Date); msg != "" {
			errs.add("date", msg)
		} else {
			patch.Date = &date
		}
	}

	// home
	homeID := current.HomeID
	if mode == Create {
		homeID = 0
	}
	homeOK := p.checkPresent(&errs, rules, "home", payload.Home != nil, mode)
	if homeOK {
		homeID = *payload.Home
		exists, err := p.teams.Exists(ctx, homeID)
		if err != nil {
			return game.Patch{}, fmt.Errorf("check home team %d: %w", homeID, err)
		}
		if !exists {
			errs.add("home", fmt.Sprintf("team %d does not exist", homeID))
		} else {
			patch.HomeID = payload.Home
		}
	}

	// away
	awayID := current.AwayID
	if mode == Create {
		awayID = 0
	}
	if p.checkPresent(&errs, rules, "away", payload.Away != nil, mode) {
		awayID = *payload.Away
	}
	switch {
	case errs.Has("away"):
	case awayID != 0 && awayID == homeID && (payload.Away != nil || payload.Home != nil):
		errs.add("away", "away must differ from home")
	case payload.Away != nil:
		exists, err := p.teams.Exists(ctx, awayID)
		if err != nil {
			return game.Patch{}, fmt.Errorf("check away team %d: %w", awayID, err)
		}
		if !exists {
			errs.add("away", fmt.Sprintf("team %d does not exist", awayID))
		} else {
			patch.AwayID = payload.Away
		}
	}

	if p.checkPresent(&errs, rules, "home_score", payload.HomeScore != nil, mode) {
		patch.HomeScore = payload.HomeScore
	}
	if p.checkPresent(&errs, rules, "away_score", payload.AwayScore != nil, mode) {
		patch.AwayScore = payload.AwayScore
	}

	if err := errs.err(); err != nil {
		p.logger.DebugContext(ctx, "game payload rejected", "errors", len(errs))
		return game.Patch{}, err
	}
	return patch, nil
}

// checkPresent records a missing-field or tag-rule failure for field and
// reports whether the field is present and passed its rules.
func (p *Pipeline) checkPresent(errs *Errors, rules map[string]string, field string, present bool, mode Mode) bool {
	if !present {
		if mode == Create {
			errs.add(field, field+" is required")
		}
		return false
	}
	if msg, failed := rules[field]; failed {
		errs.add(field, msg)
		return false
	}
	return true
}

func (p *Pipeline) checkDate(raw string) (time.Time, string) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, "date is required"
	}

	date, ok := parseISODate(value)
	if !ok {
		return time.Time{}, "date must be an ISO 8601 timestamp"
	}

	now := p.clock.Now()
	if date.After(now) {
		return time.Time{}, "date must not be in the future"
	}
	if date.Before(now.AddDate(0, -game.MaxAgeMonths, 0)) {
		return time.Time{}, fmt.Sprintf("date must not be more than %d months in the past", game.MaxAgeMonths)
	}
	return date, ""
}
