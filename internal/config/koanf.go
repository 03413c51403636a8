// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"catalogrec.yaml",
	"catalogrec.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CATALOGREC_CONFIG"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:      "file",
			DataDir:      ".", // products.json etc. next to the caller
			BadgerPath:   "catalogrec.badger",
			SyncWrites:   true,
			SeedDefaults: true,
			StrictWrites: false,
		},
		Recommend: RecommendConfig{
			Limit:    3,
			MaxLimit: 50,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "json",
			Caller:     false,
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// loadFrom runs the layered load with an explicit config file path ("" for none).
func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CATALOGREC_DATA_DIR -> storage.data_dir
	// LOG_LEVEL -> logging.level
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Storage mappings
	"catalogrec_backend":       "storage.backend",
	"catalogrec_data_dir":      "storage.data_dir",
	"catalogrec_badger_path":   "storage.badger_path",
	"catalogrec_sync_writes":   "storage.sync_writes",
	"catalogrec_seed_defaults": "storage.seed_defaults",
	"catalogrec_strict_writes": "storage.strict_writes",

	// Recommendation mappings
	"catalogrec_recommend_limit":     "recommend.limit",
	"catalogrec_recommend_max_limit": "recommend.max_limit",

	// Logging mappings
	"log_level":        "logging.level",
	"log_format":       "logging.format",
	"log_caller":       "logging.caller",
	"log_file":         "logging.file",
	"log_max_size_mb":  "logging.max_size_mb",
	"log_max_backups":  "logging.max_backups",
	"log_max_age_days": "logging.max_age_days",
	"log_compress":     "logging.compress",

	// Metrics mappings
	"catalogrec_metrics_textfile": "metrics.textfile",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - CATALOGREC_DATA_DIR -> storage.data_dir
//   - CATALOGREC_RECOMMEND_LIMIT -> recommend.limit
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables
	// never reach the config.
	return ""
}
