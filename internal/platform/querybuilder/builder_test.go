package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("g.id", "g.date", "home_team.name AS home_name").
		From("games g").
		LeftJoin("teams home_team", "home_team.id = g.home").
		Where(Eq("g.id", int64(7))).
		OrderBy("g.date DESC").
		Limit(100).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT g.id, g.date, home_team.name AS home_name FROM games g LEFT JOIN teams home_team ON home_team.id = g.home WHERE g.id = $1 ORDER BY g.date DESC LIMIT $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != 100 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderContainsFoldEscapesWildcards(t *testing.T) {
	query, args, err := Select("id").From("teams").Where(ContainsFold("name", `50%_off\`)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := `SELECT id FROM teams WHERE name ILIKE $1 ESCAPE '\'`
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != `%50\%\_off\\%` {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Set("name", "Boltaliðið").
		Set("slug", "boltalidid").
		OnConflictDoNothing().
		Returning("id", "name").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (name, slug) VALUES ($1, $2) ON CONFLICT DO NOTHING RETURNING id, name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Boltaliðið" || args[1] != "boltalidid" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "new").
		Set("description", "late").
		Where(Eq("slug", "old")).
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, description = $2 WHERE slug = $3 RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "new" || args[1] != "late" || args[2] != "old" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderHasSets(t *testing.T) {
	b := Update("games")
	if b.HasSets() {
		t.Fatalf("expected no sets on a fresh builder")
	}
	b.Set("home_score", 2)
	if !b.HasSets() {
		t.Fatalf("expected sets after Set")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("games").Where(Eq("id", int64(9))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM games WHERE id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestBuildersRejectIncompleteStatements(t *testing.T) {
	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := InsertInto("teams").ToSQL(); err == nil {
		t.Fatalf("expected error for missing insert columns")
	}
	if _, _, err := Update("teams").Set("name", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for unscoped update")
	}
	if _, _, err := DeleteFrom("games").ToSQL(); err == nil {
		t.Fatalf("expected error for unscoped delete")
	}
}
