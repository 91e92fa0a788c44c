// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/liamqma/sanmou-yanwu/internal/scorer"
)

// Config is everything the server needs at startup. Exactly one of
// DatabaseURL and BattlesDir supplies the battle history; when both are set
// the database wins.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	BattlesDir  string
	Debug       bool

	Scoring scorer.Config
}

// Load reads configuration from the environment. A missing .env file is
// fine; explicit environment variables always take precedence over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		BattlesDir:  envOr("BATTLES_DIR", "data/battles"),
		Debug:       os.Getenv("DEBUG") == "true",
		Scoring:     scorer.DefaultConfig(),
	}

	if v := os.Getenv("ESTIMATOR"); v != "" {
		cfg.Scoring.Estimator = v
	}
	if v := os.Getenv("MIN_GAMES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MIN_GAMES %q: %w", v, err)
		}
		cfg.Scoring.MinGames = n
	}
	if v := os.Getenv("PRIOR_WEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PRIOR_WEIGHT %q: %w", v, err)
		}
		cfg.Scoring.PriorWeight = f
	}

	if err := cfg.Scoring.Validate(); err != nil {
		return Config{}, fmt.Errorf("scoring config: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
