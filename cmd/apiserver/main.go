// Package main runs the archetype resolution REST API, consumed by the
// scraping and ingestion pipelines.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ptcgmeta/tracker/internal/api"
	"github.com/ptcgmeta/tracker/internal/config"
	"github.com/ptcgmeta/tracker/internal/knowledge"
)

var (
	configPath    = flag.String("config", "", "Path to config file (TOML)")
	port          = flag.Int("port", 0, "Override API server port")
	knowledgePath = flag.String("knowledge", "", "Override knowledge table file")
	debug         = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *knowledgePath != "" {
		cfg.Knowledge.FilePath = *knowledgePath
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// An inconsistent knowledge base is fatal: the engine must not serve
	// queries from tables that failed validation.
	base, err := loadKnowledge(cfg.Knowledge.FilePath)
	if err != nil {
		logger.Error("load knowledge base", "error", err)
		os.Exit(1)
	}
	logger.Info("knowledge base loaded",
		"sprite_keys", base.SpriteCount(), "archetypes", len(base.Archetypes()))

	server := api.NewServer(&api.Config{
		Port:            cfg.Server.Port,
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateBurst:       cfg.Server.RateBurst,
		Workers:         cfg.Pipeline.Workers,
	}, base, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Knowledge.Watch {
		watcher := knowledge.NewWatcher(cfg.Knowledge.FilePath, server.SetKnowledge, logger)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("knowledge watcher stopped", "error", err)
			}
		}()
	}

	if err := server.Start(); err != nil {
		logger.Error("start API server", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

// loadKnowledge builds the knowledge base from the configured file, or
// the compiled-in defaults when no file is set.
func loadKnowledge(path string) (*knowledge.Base, error) {
	if path == "" {
		return knowledge.Default()
	}
	return knowledge.LoadFile(path)
}
