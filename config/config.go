/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads jobentity settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings needed to reach the DynamoDB table.
type Config struct {
	AWSAccessKey string `env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `env:"AWS_SECRET_KEY"`
	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`

	// TableName is the DynamoDB table holding job records.
	TableName string `env:"AWS_DDB_TABLE"`

	// Endpoint overrides the DynamoDB endpoint, e.g. http://localhost:8000
	// for DynamoDB Local.
	Endpoint string `env:"AWS_DDB_ENDPOINT"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files (".env" when none are given) and then
// parses the environment. Missing .env files are not an error; variables
// already set in the environment win over values in the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Validate reports settings that make the store unusable.
func (c Config) Validate() error {
	if c.TableName == "" {
		return errors.New("AWS_DDB_TABLE is required")
	}
	if c.AWSAccessKey != "" && c.AWSSecretKey == "" {
		return errors.New("AWS_SECRET_KEY is required when AWS_ACCESS_KEY is set")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
