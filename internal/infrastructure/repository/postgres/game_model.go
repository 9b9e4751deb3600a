package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
)

var gameColumns = []string{"id", "date", "home", "away", "home_score", "away_score"}

var gameReadColumns = []string{
	"g.id",
	"g.date",
	"g.home",
	"g.away",
	"g.home_score",
	"g.away_score",
	"home_team.name AS home_name",
	"away_team.name AS away_name",
}

type gameTableModel struct {
	ID        int64          `db:"id"`
	Date      time.Time      `db:"date"`
	Home      int64          `db:"home"`
	Away      int64          `db:"away"`
	HomeScore int            `db:"home_score"`
	AwayScore int            `db:"away_score"`
	HomeName  sql.NullString `db:"home_name"`
	AwayName  sql.NullString `db:"away_name"`
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{
		ID:        row.ID,
		Date:      row.Date.UTC(),
		HomeID:    row.Home,
		AwayID:    row.Away,
		HomeName:  row.HomeName.String,
		AwayName:  row.AwayName.String,
		HomeScore: row.HomeScore,
		AwayScore: row.AwayScore,
	}
}
