package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/babysitterd/chasm/internal/config"
	"github.com/babysitterd/chasm/internal/logger"
	"github.com/babysitterd/chasm/internal/save"
	"github.com/babysitterd/chasm/internal/server"
)

func main() {
	configFile := flag.String("config", "data/chasm.yaml", "Path to config YAML file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	seed := flag.Int64("seed", 0, "Dungeon generation seed (overrides config; 0 means random per session)")
	saveDriver := flag.String("save-driver", "", "Save driver: file, sqlite or postgres (overrides config)")
	savePath := flag.String("save-path", "", "Save file or database path (overrides config)")
	saveSlot := flag.String("save-slot", "", "Save slot name (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *addr != "" {
		cfg.Server.ListenAddr = *addr
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *saveDriver != "" {
		cfg.Save.Driver = *saveDriver
	}
	if *savePath != "" {
		cfg.Save.Path = *savePath
	}
	if *saveSlot != "" {
		cfg.Save.Slot = *saveSlot
	}

	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Starting Chasm server")

	store, err := save.Open(cfg.Save)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}

	srv := server.New(cfg.Server, cfg.Game, store, cfg.Seed)

	// Close the store cleanly on Ctrl-C.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Shutting down", "signal", sig.String())
		if err := store.Close(); err != nil {
			logger.Error("Closing save store failed", "error", err)
		}
		os.Exit(0)
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
