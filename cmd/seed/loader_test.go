package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadTeamNames(t *testing.T) {
	dir := t.TempDir()

	plain := writeFile(t, dir, "teams.json", `["Boltaliðið", "Dripplararnir"]`)
	names, err := readTeamNames(plain)
	if err != nil {
		t.Fatalf("read plain names: %v", err)
	}
	if strings.Join(names, ",") != "Boltaliðið,Dripplararnir" {
		t.Fatalf("unexpected names: %v", names)
	}

	objects := writeFile(t, dir, "teams-objects.json", `[{"name":"Sigurliðið","description":"x"}]`)
	names, err = readTeamNames(objects)
	if err != nil {
		t.Fatalf("read object names: %v", err)
	}
	if len(names) != 1 || names[0] != "Sigurliðið" {
		t.Fatalf("unexpected names: %v", names)
	}

	broken := writeFile(t, dir, "broken.json", `{"name":`)
	if _, err := readTeamNames(broken); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestGamedayFilesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gameday-2.json", `{}`)
	writeFile(t, dir, "gameday-1.json", `{}`)
	writeFile(t, dir, "teams.json", `[]`)
	writeFile(t, dir, "gameday-notes.txt", ``)

	files, err := gamedayFiles(dir)
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "gameday-1.json" || filepath.Base(files[1]) != "gameday-2.json" {
		t.Fatalf("unexpected files: %v", files)
	}

	single, err := gamedayFiles(files[0])
	if err != nil || len(single) != 1 {
		t.Fatalf("expected single file passthrough, got %v %v", single, err)
	}
}

func TestReadGameday(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gameday-z48d.json", `{
		"date": "2024-02-06T18:16:21.813Z",
		"games": [
			{"home": {"name": "Boltaliðið", "score": 3}, "away": {"name": "Óhemjurnar", "score": 1}}
		]
	}`)

	gameday, err := readGameday(path)
	if err != nil {
		t.Fatalf("read gameday: %v", err)
	}
	if !gameday.Date.Equal(time.Date(2024, 2, 6, 18, 16, 21, 813000000, time.UTC)) {
		t.Fatalf("unexpected date: %s", gameday.Date)
	}
	if len(gameday.Games) != 1 || gameday.Games[0].Away.Name != "Óhemjurnar" || gameday.Games[0].Home.Score != 3 {
		t.Fatalf("unexpected games: %+v", gameday.Games)
	}
}
