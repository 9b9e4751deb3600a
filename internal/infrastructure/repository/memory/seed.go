package memory

import (
	"github.com/riskibarqy/scoreboard/internal/domain/team"
	"github.com/riskibarqy/scoreboard/internal/platform/slug"
)

// SeedTeamNames is the league used by local fixtures and the seed command.
var SeedTeamNames = []string{
	"Boltaliðið",
	"Dripplararnir",
	"Skotföstu kempurnar",
	"Markaskorarnir",
	"Sigurliðið",
	"Risaeðlurnar",
	"Framherjarnir",
	"Fljótu fæturnir",
	"Vinningshópurinn",
	"Ósigrandi skotfólkið",
	"Óhemjurnar",
	"Hraðaliðið",
}

func SeedTeams() []team.Team {
	out := make([]team.Team, 0, len(SeedTeamNames))
	for i, name := range SeedTeamNames {
		out = append(out, team.Team{
			ID:   int64(i + 1),
			Name: name,
			Slug: slug.Generate(name),
		})
	}
	return out
}
