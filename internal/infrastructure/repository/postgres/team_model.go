package postgres

import (
	"database/sql"

	"github.com/riskibarqy/scoreboard/internal/domain/team"
)

var teamColumns = []string{"id", "name", "slug", "description"}

type teamTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Slug        string         `db:"slug"`
	Description sql.NullString `db:"description"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description.String,
	}
}
