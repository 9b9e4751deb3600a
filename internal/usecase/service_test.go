package usecase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/validation"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newTestPipeline(lookup validation.TeamLookup) *validation.Pipeline {
	return validation.NewPipeline(lookup,
		validation.WithClock(clockwork.NewFakeClockAt(testNow)),
		validation.WithLogger(logging.NewNop()),
	)
}

func ptr[T any](v T) *T { return &v }

func mustNoErr(t *testing.T, err error, what string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", what, err)
	}
}
