// Chefgpt is a recipe-suggestion daemon: it turns a user's pantry into
// generated Indian recipes via the Sarvam AI APIs, with speech-to-text entry,
// narration, and on-demand translation.
//
// Usage:
//
//	chefgpt [flags]
//	chefgpt --config /path/to/chefgpt.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/sahas-01/ChefGPT/docs"
	"github.com/sahas-01/ChefGPT/internal/chef"
	"github.com/sahas-01/ChefGPT/internal/config"
	"github.com/sahas-01/ChefGPT/internal/health"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
	"github.com/sahas-01/ChefGPT/internal/server"
	"github.com/sahas-01/ChefGPT/internal/speech"
	"github.com/sahas-01/ChefGPT/internal/store"
	"github.com/sahas-01/ChefGPT/internal/translate"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/chefgpt.local.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("chefgpt %s\n", version)
		os.Exit(0)
	}

	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("chefgpt starting", "version", version)

	if cfg.Sarvam.APIKey == "" {
		// Startup proceeds; every vendor-backed request reports the missing
		// credential instead of reaching upstream.
		slog.Warn("sarvam api key not configured, vendor-backed routes will fail")
	}

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Open the session store.
	pantry, err := store.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to open store", "error", err, "path", cfg.Store.Path)
		os.Exit(1)
	}
	defer func() {
		if err := pantry.Close(); err != nil {
			slog.Error("store close error", "error", err)
		}
	}()

	// Wire the vendor client and the bridges around it.
	client := sarvam.New(cfg.Sarvam)
	deps := server.Deps{
		Chef:        chef.New(client, cfg.Generation),
		Session:     chef.NewSession(),
		Translator:  translate.New(client),
		Narrator:    speech.NewNarrator(client, cfg.TTS),
		Transcriber: speech.NewTranscriber(client),
		Pantry:      pantry,
	}

	api := server.New(cfg.Server.Port, deps)

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- api.Listen(ctx)
	}()

	healthServer.SetReady(true)
	slog.Info("chefgpt ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Server.HealthPort)

	// Block until shutdown signal or listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining...")
	case err := <-errCh:
		if err != nil {
			slog.Error("api server failed", "error", err)
		}
	}

	if err := api.Close(); err != nil {
		slog.Error("api close error", "error", err)
	}
	slog.Info("chefgpt stopped")
}
