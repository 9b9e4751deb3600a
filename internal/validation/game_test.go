package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/scoreboard/internal/domain/game"
	teammock "github.com/riskibarqy/scoreboard/internal/mocks/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newTestPipeline(t *testing.T) (*Pipeline, *teammock.Repository) {
	t.Helper()

	teams := teammock.NewRepository(t)
	p := NewPipeline(teams,
		WithClock(clockwork.NewFakeClockAt(testNow)),
		WithLogger(logging.NewNop()),
	)
	return p, teams
}

func ptr[T any](v T) *T { return &v }

func validGame() GamePayload {
	return GamePayload{
		Date:      ptr("2026-10-10T18:30:00Z"),
		Home:      ptr(int64(1)),
		Away:      ptr(int64(2)),
		HomeScore: ptr(3),
		AwayScore: ptr(1),
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestValidateGameCreateValid(t *testing.T) {
	p, teams := newTestPipeline(t)
	teams.On("Exists", mock.Anything, int64(1)).Return(true, nil).Once()
	teams.On("Exists", mock.Anything, int64(2)).Return(true, nil).Once()

	patch, err := p.ValidateGame(context.Background(), validGame(), Create, game.Game{})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	got := patch.Apply(game.Game{})
	want := game.Game{Date: time.Date(2026, 10, 10, 18, 30, 0, 0, time.UTC), HomeID: 1, AwayID: 2, HomeScore: 3, AwayScore: 1}
	if got != want {
		t.Fatalf("unexpected game:\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestValidateGameSameTeamsFailsOnAwayWithoutLookup(t *testing.T) {
	p, teams := newTestPipeline(t)
	teams.On("Exists", mock.Anything, int64(4)).Return(true, nil).Once()

	payload := validGame()
	payload.Home = ptr(int64(4))
	payload.Away = ptr(int64(4))

	_, err := p.ValidateGame(context.Background(), payload, Create, game.Game{})
	fields := fieldsOf(t, err)
	if fields["away"] != "away must differ from home" {
		t.Fatalf("expected error on away, got %+v", fields)
	}
	if _, ok := fields["home"]; ok {
		t.Fatalf("unexpected error on home: %+v", fields)
	}
}

func TestValidateGameScoreRange(t *testing.T) {
	cases := []struct {
		name    string
		score   int
		wantErr bool
	}{
		{name: "upper bound accepted", score: 99},
		{name: "zero accepted", score: 0},
		{name: "hundred rejected", score: 100, wantErr: true},
		{name: "negative rejected", score: -1, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, teams := newTestPipeline(t)
			teams.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

			payload := validGame()
			payload.HomeScore = ptr(tc.score)

			_, err := p.ValidateGame(context.Background(), payload, Create, game.Game{})
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("expected score %d to pass, got %v", tc.score, err)
				}
				return
			}
			if _, ok := fieldsOf(t, err)["home_score"]; !ok {
				t.Fatalf("expected home_score error for %d", tc.score)
			}
		})
	}
}

func TestValidateGameDateWindow(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		wantMsg string
	}{
		{name: "date only", date: "2026-10-01"},
		{name: "trimmed with offset", date: "  2026-10-16T13:00:00+02:00 "},
		{name: "fractional seconds", date: "2026-09-01T10:00:00.250Z"},
		{name: "future", date: "2026-10-16T12:00:01Z", wantMsg: "date must not be in the future"},
		{name: "too old", date: "2026-08-15T23:59:59Z", wantMsg: "date must not be more than 2 months in the past"},
		{name: "space separator", date: "2026-10-01 10:00:00", wantMsg: "date must be an ISO 8601 timestamp"},
		{name: "garbage", date: "yesterday", wantMsg: "date must be an ISO 8601 timestamp"},
		{name: "blank", date: "   ", wantMsg: "date is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, teams := newTestPipeline(t)
			teams.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

			payload := validGame()
			payload.Date = ptr(tc.date)

			_, err := p.ValidateGame(context.Background(), payload, Create, game.Game{})
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected %q to pass, got %v", tc.date, err)
				}
				return
			}
			if got := fieldsOf(t, err)["date"]; got != tc.wantMsg {
				t.Fatalf("unexpected date message: got=%q want=%q", got, tc.wantMsg)
			}
		})
	}
}

func TestValidateGameCollectsEveryFailure(t *testing.T) {
	p, teams := newTestPipeline(t)
	teams.On("Exists", mock.Anything, int64(7)).Return(false, nil).Once()

	payload := GamePayload{
		Date:      ptr("not a date"),
		Home:      ptr(int64(7)),
		HomeScore: ptr(150),
	}

	_, err := p.ValidateGame(context.Background(), payload, Create, game.Game{})
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}

	want := []string{"date", "home", "away", "home_score", "away_score"}
	if len(verrs) != len(want) {
		t.Fatalf("expected %d field errors, got %+v", len(want), verrs)
	}
	for i, field := range want {
		if verrs[i].Field != field {
			t.Fatalf("error %d: want field %q, got %q", i, field, verrs[i].Field)
		}
	}
}

func TestValidateGameLookupFailureAborts(t *testing.T) {
	p, teams := newTestPipeline(t)
	storeDown := errors.New("connection refused")
	teams.On("Exists", mock.Anything, int64(1)).Return(false, storeDown).Once()

	_, err := p.ValidateGame(context.Background(), validGame(), Create, game.Game{})
	if !errors.Is(err, storeDown) {
		t.Fatalf("expected store error, got %v", err)
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		t.Fatalf("store failure must not be reported as a field error")
	}
}

func TestValidateGameUpdateChecksOnlyPresentFields(t *testing.T) {
	p, _ := newTestPipeline(t)
	current := game.Game{ID: 9, Date: testNow.AddDate(0, 0, -3), HomeID: 1, AwayID: 2, HomeScore: 0, AwayScore: 0}

	patch, err := p.ValidateGame(context.Background(), GamePayload{AwayScore: ptr(4)}, Update, current)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if patch.AwayScore == nil || *patch.AwayScore != 4 || patch.HomeID != nil || patch.Date != nil {
		t.Fatalf("unexpected patch: %+v", patch)
	}
}

func TestValidateGameUpdateHomeClashesWithStoredAway(t *testing.T) {
	p, teams := newTestPipeline(t)
	teams.On("Exists", mock.Anything, int64(2)).Return(true, nil).Once()
	current := game.Game{ID: 9, HomeID: 1, AwayID: 2}

	_, err := p.ValidateGame(context.Background(), GamePayload{Home: ptr(int64(2))}, Update, current)
	if fieldsOf(t, err)["away"] != "away must differ from home" {
		t.Fatalf("expected away clash, got %v", err)
	}
}
