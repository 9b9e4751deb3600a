package game

import "time"

// Side is one team's name and score as written in fixture files.
type Side struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// GamedayGame is a raw imported result; teams are referenced by display name.
type GamedayGame struct {
	Home Side `json:"home"`
	Away Side `json:"away"`
}

// Gameday groups the games played on one date. It only exists during import.
type Gameday struct {
	Date  time.Time     `json:"date"`
	Games []GamedayGame `json:"games"`
}

// ImportResult counts what happened to every game of an import.
type ImportResult struct {
	Inserted   int
	Unresolved int
	Failed     int
}

func (r ImportResult) Total() int {
	return r.Inserted + r.Unresolved + r.Failed
}
