package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scoreboard/internal/domain/game"
)

// readTeamNames reads a JSON array of team names, or of objects with a name field.
func readTeamNames(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var names []string
	if err := sonic.Unmarshal(raw, &names); err == nil {
		return names, nil
	}

	var objects []struct {
		Name string `json:"name"`
	}
	if err := sonic.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("decode %s: expected an array of names or of {\"name\": ...}: %w", path, err)
	}
	names = make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.Name)
	}
	return names, nil
}

// gamedayFiles lists the files to import. A directory contributes its
// gameday*.json files in name order.
func gamedayFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "gameday") || !strings.HasSuffix(name, ".json") {
			continue
		}
		files = append(files, filepath.Join(path, name))
	}
	sort.Strings(files)
	return files, nil
}

func readGameday(path string) (game.Gameday, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return game.Gameday{}, fmt.Errorf("read %s: %w", path, err)
	}

	var gameday game.Gameday
	if err := sonic.Unmarshal(raw, &gameday); err != nil {
		return game.Gameday{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return gameday, nil
}
