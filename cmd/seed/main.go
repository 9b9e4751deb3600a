package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/riskibarqy/scoreboard/internal/app"
	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	os.Exit(seed(os.Args[1], os.Args[2:]))
}

func seed(cmd string, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		logging.Default().Error("load config", "error", err)
		return 1
	}

	logger := logging.NewConsole(cfg.LogLevel).Named("seed")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store", "error", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close store", "error", err)
		}
	}()

	if err := run(ctx, store, logger, cmd, args); err != nil {
		logger.Error("seed failed", "command", cmd, "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, store *app.Store, logger *logging.Logger, cmd string, args []string) error {
	importer := usecase.NewImportService(store.Teams, store.Games, logger)

	switch cmd {
	case "teams":
		names := memory.SeedTeamNames
		if len(args) > 0 {
			loaded, err := readTeamNames(args[0])
			if err != nil {
				return err
			}
			names = loaded
		}
		inserted := importer.ImportTeams(ctx, names)
		for _, item := range inserted {
			logger.Info("inserted team", "name", item.Name, "slug", item.Slug)
		}
		return nil

	case "gamedays":
		if len(args) == 0 {
			return fmt.Errorf("gamedays requires a file or directory argument")
		}
		files, err := gamedayFiles(args[0])
		if err != nil {
			return err
		}

		gamedays := make([]game.Gameday, 0, len(files))
		for _, file := range files {
			gameday, err := readGameday(file)
			if err != nil {
				logger.Warn("skip gameday file", "file", file, "error", err)
				continue
			}
			logger.Debug("read gameday file", "file", file, "games", len(gameday.Games))
			gamedays = append(gamedays, gameday)
		}

		result, err := importer.ImportGamedays(ctx, gamedays)
		if err != nil {
			return err
		}
		logger.Info("gamedays imported",
			"files", len(files),
			"inserted", result.Inserted,
			"unresolved", result.Unresolved,
			"failed", result.Failed,
		)
		return nil

	case "resync-slugs":
		result, err := usecase.NewSlugResyncService(store.Teams, logger).Resync(ctx)
		if err != nil {
			return err
		}
		logger.Info("slugs resynced", "checked", result.Checked, "updated", result.Updated, "failed", result.Failed)
		return nil
	}

	printUsage()
	return fmt.Errorf("unknown command %q", cmd)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <teams|gamedays|resync-slugs> [args]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s teams\n", name)
	fmt.Fprintf(os.Stderr, "  %s teams ./data/teams.json\n", name)
	fmt.Fprintf(os.Stderr, "  %s gamedays ./data\n", name)
	fmt.Fprintf(os.Stderr, "  %s resync-slugs\n", name)
}
