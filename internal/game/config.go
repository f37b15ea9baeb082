package game

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible pursuer wandering.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickRate is the fixed simulation step.
	TickRate time.Duration

	// Padding is the wall clearance added around movers before each wall test.
	Padding float64

	// ScaredDuration is how long pursuers stay scared after a power-up.
	ScaredDuration time.Duration

	// LevelID picks the maze from levels.json.
	LevelID string

	// Debug enables the diagnostic logger.
	Debug bool
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TickRate:       16 * time.Millisecond,
		Padding:        4,
		ScaredDuration: 5000 * time.Millisecond,
		LevelID:        "classic",
	}
}

// ConfigFromEnv returns DefaultConfig overridden by PELLETMAZE_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("PELLETMAZE_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("PELLETMAZE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("PELLETMAZE_TICK_MS"); ok {
		ms, err := positiveMillis(v)
		if err != nil {
			return cfg, fmt.Errorf("PELLETMAZE_TICK_MS: %w", err)
		}
		cfg.TickRate = ms
	}
	if v, ok := os.LookupEnv("PELLETMAZE_PADDING"); ok {
		padding, err := clearance(v)
		if err != nil {
			return cfg, fmt.Errorf("PELLETMAZE_PADDING: %w", err)
		}
		cfg.Padding = padding
	}
	if v, ok := os.LookupEnv("PELLETMAZE_SCARED_MS"); ok {
		ms, err := positiveMillis(v)
		if err != nil {
			return cfg, fmt.Errorf("PELLETMAZE_SCARED_MS: %w", err)
		}
		cfg.ScaredDuration = ms
	}
	if v := os.Getenv("PELLETMAZE_LEVEL"); v != "" {
		cfg.LevelID = v
	}
	if v, ok := os.LookupEnv("PELLETMAZE_DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("PELLETMAZE_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

func positiveMillis(v string) (time.Duration, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return time.Duration(n) * time.Millisecond, nil
}

// clearance parses a wall padding. It must be finite and not negative, or
// padded bounds would invert.
func clearance(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("must be finite, got %v", f)
	}
	if f < 0 {
		return 0, fmt.Errorf("must not be negative, got %v", f)
	}
	return f, nil
}
