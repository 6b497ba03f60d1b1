// Package main provides the encounter simulator binary that plays batches of
// autopiloted adventures and logs how the encounters resolved.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/observability"
	"github.com/cory-johannsen/skirmish/internal/simulation"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and SKIRMISH_ environment overrides")
	envFile := flag.String("env", ".env", "optional dotenv file loaded before configuration")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("loading %s: %v", *envFile, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	contentStart := time.Now()
	content, err := simulation.LoadContent(cfg.Content)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("maps", len(content.Registry.MapIDs())),
		zap.Int("rooms", len(content.Registry.RoomIndexes())),
		zap.Int("creatures", len(content.Creatures.IDs())),
		zap.Int("weapons", len(content.Weapons.IDs())),
		zap.Duration("elapsed", time.Since(contentStart)),
	)

	var ai combat.CreatureAI
	if cfg.Simulation.ScriptedAI && cfg.Content.ScriptsDir != "" {
		mgr, profiles, err := simulation.LoadScripts(cfg.Content.ScriptsDir, content.Creatures, cfg.Simulation.InstructionLimit, logger)
		if err != nil {
			logger.Fatal("loading creature scripts", zap.Error(err))
		}
		defer mgr.Close()
		ai = combat.NewScriptedAI(mgr, logger)
		logger.Info("creature scripts loaded", zap.Int("profiles", profiles))
	}

	batch, err := simulation.NewBatch(content, cfg.Simulation, ai, logger)
	if err != nil {
		logger.Fatal("preparing batch", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting batch",
		zap.Int("runs", cfg.Simulation.Runs),
		zap.Int("workers", cfg.Simulation.Workers),
		zap.Uint64("seed", cfg.Simulation.Seed),
	)
	summary, err := batch.Run(ctx)
	if err != nil {
		logger.Fatal("running batch", zap.Error(err))
	}
	logger.Info("batch complete", append(summary.Fields(), zap.Duration("elapsed", time.Since(start)))...)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		v := config.Defaults()
		config.BindEnv(v)
		return config.LoadFromViper(v)
	}
	return config.Load(path)
}
