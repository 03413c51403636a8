// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validBackends defines the allowed storage backends
var validBackends = map[string]bool{
	"file":   true,
	"badger": true,
	"memory": true,
}

// validateStorage validates the backend choice and its location
func (c *Config) validateStorage() error {
	if !validBackends[c.Storage.Backend] {
		return fmt.Errorf("CATALOGREC_BACKEND must be one of: file, badger, memory")
	}

	switch c.Storage.Backend {
	case "file":
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("CATALOGREC_DATA_DIR is required for the file backend")
		}
	case "badger":
		if strings.TrimSpace(c.Storage.BadgerPath) == "" {
			return fmt.Errorf("CATALOGREC_BADGER_PATH is required for the badger backend")
		}
	}
	return nil
}

// validateRecommend validates recommendation limits
func (c *Config) validateRecommend() error {
	if c.Recommend.Limit < 1 {
		return fmt.Errorf("CATALOGREC_RECOMMEND_LIMIT must be at least 1")
	}
	if c.Recommend.MaxLimit < c.Recommend.Limit {
		return fmt.Errorf("CATALOGREC_RECOMMEND_MAX_LIMIT must be >= CATALOGREC_RECOMMEND_LIMIT")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"error":    true,
	"disabled": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	if err := c.validateLogFormat(); err != nil {
		return err
	}
	return c.validateLogRotation()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, disabled")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateLogRotation only applies when a log file is configured
func (c *Config) validateLogRotation() error {
	if c.Logging.File == "" {
		return nil
	}
	if c.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be at least 1")
	}
	if c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("LOG_MAX_BACKUPS and LOG_MAX_AGE_DAYS must not be negative")
	}
	return nil
}
