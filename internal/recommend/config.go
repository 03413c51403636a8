// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of recommendations returned when a request
	// does not ask for a specific number.
	// Default: 3.
	DefaultK int `json:"default_k"`

	// MaxK is the maximum allowed K value. Larger requests are clamped.
	// Default: 50.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns a Config with the standard limits.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultK: 3,
			MaxK:     50,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= limits.default_k (%d)",
			c.Limits.MaxK, c.Limits.DefaultK)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
