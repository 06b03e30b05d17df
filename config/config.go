// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/grafrank/grafrank/graph"
	"github.com/grafrank/grafrank/summary"
)

// Config holds the settings of a grafrank invocation.
type Config struct {
	// DB is the path to the sqlite database file.
	DB string

	// Corpus is the directory holding raw corpus files.
	Corpus string

	Window      int
	WordLimit   int
	PhraseLimit int
}

func Default() Config {
	return Config{
		DB:          "grafrank.db",
		Corpus:      ".",
		Window:      graph.DefaultWindow,
		WordLimit:   summary.DefaultWordLimit,
		PhraseLimit: summary.DefaultPhraseLimit,
	}
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged first; a missing file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("GRAFRANK_DB"); v != "" {
		cfg.DB = v
	}
	if v := os.Getenv("GRAFRANK_CORPUS"); v != "" {
		cfg.Corpus = v
	}

	var err error
	if cfg.Window, err = intEnv("GRAFRANK_WINDOW", cfg.Window); err != nil {
		return cfg, err
	}
	if cfg.WordLimit, err = intEnv("GRAFRANK_WORD_LIMIT", cfg.WordLimit); err != nil {
		return cfg, err
	}
	if cfg.PhraseLimit, err = intEnv("GRAFRANK_PHRASE_LIMIT", cfg.PhraseLimit); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %q", key, v)
	}
	if n <= 0 {
		return def, fmt.Errorf("invalid %s: must be positive, got %d", key, n)
	}

	return n, nil
}
