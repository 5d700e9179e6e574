// Package config loads process configuration from an optional .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	EnvDB       = "MONEYBAE_DB"
	EnvLogLevel = "MONEYBAE_LOG_LEVEL"
	EnvLogFile  = "MONEYBAE_LOG_FILE"
	EnvLogCalls = "MONEYBAE_LOG_USE_CASES"
	EnvFile     = "MONEYBAE_ENV_FILE"
)

// Config holds everything main needs to wire the application.
type Config struct {
	DBPath   string
	LogLevel string
	LogFile  string
	// LogUseCases emits one log entry per service use case.
	LogUseCases bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:   filepath.Join(home, ".moneybae", "moneybae.db"),
		LogLevel: "warn",
	}, nil
}

// Load reads .env (or the file named by MONEYBAE_ENV_FILE) when present and
// then overlays environment variables on the defaults. Variables already set
// in the environment win over the file.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogCalls); v != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvLogCalls, v, err)
		}
		cfg.LogUseCases = on
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the process cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("database path is empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s %q: %w", EnvLogLevel, c.LogLevel, err)
	}
	return nil
}

func loadEnvFile() error {
	path := os.Getenv(EnvFile)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}
