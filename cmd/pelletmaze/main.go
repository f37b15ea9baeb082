// Package main is the entry point for pelletmaze.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pelletmaze/internal/game"
	"github.com/samdwyer/pelletmaze/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_PELLETMAZE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// tcell owns the terminal, so everything logged from here on goes to a file.
	logFile, err := openLog()
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	setupOTelEnv()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx,
		attribute.String("game.level", cfg.LevelID),
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Bool("game.debug", cfg.Debug),
	)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Printf("Failed to initialize game: %v", err)
		fmt.Fprintf(os.Stderr, "pelletmaze: %v\n", err)
		return
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
	}
}

func openLog() (*os.File, error) {
	path := os.Getenv("PELLETMAZE_LOG_FILE")
	if path == "" {
		path = "pelletmaze.log"
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the
	// header is always built here.
	apiKey := os.Getenv("HONEYCOMB_PELLETMAZE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_PELLETMAZE_DATASET")
	if dataset == "" {
		dataset = "pelletmaze"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
