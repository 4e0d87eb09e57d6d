package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/config"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/scrape"
)

var (
	updateFlag = flag.String("update", "", "scraper set to run: basic, players, games, stats, playoffs, pbp, or all")
	playerID   = flag.Int("player-id", 0, "limit the players update to one player")
	gameID     = flag.Int("game-id", 0, "limit the stats or pbp update to one game")
	seasonID   = flag.Int("season-id", 0, "limit the games, stats, or playoffs update to one season")
	limitFlag  = flag.Int("limit", 0, "cap how many games a pbp run processes")
	resetFlag  = flag.Bool("reset", false, "drop and recreate the database")
	yesFlag    = flag.Bool("yes", false, "confirm a destructive operation")
	configPath = flag.String("config", "", "path to a YAML config file")
	dbPath     = flag.String("db", "", "database path, overriding the config")
	verbose    = flag.Bool("verbose", false, "debug logging")
)

func main() {
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(); err != nil {
		zap.S().Fatalw("run failed", "error", err)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return logger
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	if *resetFlag {
		store, err := db.Reset(cfg.DatabasePath, *yesFlag)
		if err != nil {
			return err
		}
		return store.Close()
	}

	if *updateFlag == "" {
		flag.Usage()
		return nil
	}

	store, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	s := scrape.New(hockeytech.NewClient(cfg), store)

	switch *updateFlag {
	case "all":
		return s.UpdateAll()
	case "basic":
		return s.UpdateBasicInfo()
	case "players":
		_, err := s.UpdatePlayers(*playerID)
		return err
	case "games":
		_, err := s.UpdateGames(*seasonID)
		return err
	case "stats":
		return s.UpdateStats(*seasonID, *gameID)
	case "playoffs":
		return s.UpdatePlayoffs(*seasonID)
	case "pbp":
		_, err := s.UpdatePlayByPlay(*gameID, *limitFlag)
		return err
	default:
		return errors.Newf("unknown update target %q", *updateFlag)
	}
}
