// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package config

import (
	"os"

	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/recommend"
	"github.com/tomtom215/catalogrec/internal/resource"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (catalogrec.yaml, or CATALOGREC_CONFIG)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//   - Storage: where products, users and reviews are persisted
//   - Recommend: recommendation list sizes
//   - Logging: zerolog level, format and optional rotated file
//   - Metrics: optional Prometheus textfile export
type Config struct {
	Storage   StorageConfig   `koanf:"storage"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// StorageConfig selects and configures the resource backend.
type StorageConfig struct {
	// Backend is one of: file, badger, memory.
	// Default: file
	Backend string `koanf:"backend"`

	// DataDir is the directory holding products.json, users.json and
	// reviews.json for the file backend.
	// Default: . (current working directory)
	DataDir string `koanf:"data_dir"`

	// BadgerPath is the BadgerDB directory for the badger backend.
	// Default: catalogrec.badger
	BadgerPath string `koanf:"badger_path"`

	// SyncWrites fsyncs every badger write.
	// Default: true
	SyncWrites bool `koanf:"sync_writes"`

	// SeedDefaults populates the demo catalog when nothing was loaded.
	// Default: true
	SeedDefaults bool `koanf:"seed_defaults"`

	// StrictWrites turns a failed save into a RESOURCE_ACCESS error.
	// When false, save failures are only logged and counted.
	// Default: false
	StrictWrites bool `koanf:"strict_writes"`
}

// RecommendConfig controls recommendation list sizes.
type RecommendConfig struct {
	// Limit is the number of recommendations returned.
	// Default: 3
	Limit int `koanf:"limit"`

	// MaxLimit caps Limit and any per-request value.
	// Default: 50
	MaxLimit int `koanf:"max_limit"`
}

// LoggingConfig holds zerolog settings. Logs always go to stderr or to
// File; stdout is reserved for the command response.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error, disabled.
	// Default: warn
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`

	// File sends logs to a size-rotated file (lumberjack) when set.
	File string `koanf:"file"`

	// MaxSizeMB is the rotation size of File.
	// Default: 10
	MaxSizeMB int `koanf:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	// Default: 3
	MaxBackups int `koanf:"max_backups"`

	// MaxAgeDays removes rotated files older than this. 0 keeps them.
	MaxAgeDays int `koanf:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `koanf:"compress"`
}

// MetricsConfig holds the Prometheus export settings.
type MetricsConfig struct {
	// Textfile is the path of a node_exporter textfile written after each
	// command. Empty disables the export.
	Textfile string `koanf:"textfile"`
}

// Load reads configuration from:
//  1. Built-in defaults
//  2. Config file (catalogrec.yaml if it exists, or the path in CATALOGREC_CONFIG)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// ResourceConfig returns the resource backend settings.
func (c *Config) ResourceConfig() resource.Config {
	return resource.Config{
		Backend:    c.Storage.Backend,
		DataDir:    c.Storage.DataDir,
		BadgerPath: c.Storage.BadgerPath,
		SyncWrites: c.Storage.SyncWrites,
	}
}

// EngineConfig returns the recommendation engine settings.
func (c *Config) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Limits.DefaultK = c.Recommend.Limit
	cfg.Limits.MaxK = c.Recommend.MaxLimit
	return cfg
}

// LoggerConfig returns the logging settings with stderr as output.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	cfg.Output = os.Stderr
	cfg.File = c.Logging.File
	cfg.Rotation = logging.RotationConfig{
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
	return cfg
}
