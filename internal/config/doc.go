// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package config provides layered configuration for catalogrec.

Settings are loaded with Koanf v2 from three layers, later layers winning:

 1. Built-in defaults (defaultConfig, through the structs provider)
 2. An optional YAML file: $CATALOGREC_CONFIG, else ./catalogrec.yaml
 3. Environment variables, through an explicit name mapping

# Configuration Structure

  - StorageConfig: backend selection, data directory, seeding, write strictness
  - RecommendConfig: default and maximum recommendation list size
  - LoggingConfig: zerolog level/format and optional rotated log file
  - MetricsConfig: optional Prometheus textfile export

# Environment Variables

	CATALOGREC_BACKEND            storage.backend        file | badger | memory
	CATALOGREC_DATA_DIR           storage.data_dir
	CATALOGREC_BADGER_PATH        storage.badger_path
	CATALOGREC_SYNC_WRITES        storage.sync_writes
	CATALOGREC_SEED_DEFAULTS      storage.seed_defaults
	CATALOGREC_STRICT_WRITES      storage.strict_writes
	CATALOGREC_RECOMMEND_LIMIT    recommend.limit
	CATALOGREC_RECOMMEND_MAX_LIMIT recommend.max_limit
	LOG_LEVEL                     logging.level
	LOG_FORMAT                    logging.format
	LOG_CALLER                    logging.caller
	LOG_FILE                      logging.file
	CATALOGREC_METRICS_TEXTFILE   metrics.textfile

Other environment variables are ignored.

# YAML Example

	storage:
	  backend: badger
	  badger_path: /var/lib/catalogrec
	recommend:
	  limit: 5
	logging:
	  level: info
	  file: /var/log/catalogrec.log

# Usage

	cfg, err := config.Load()
	if err != nil {
	    return err
	}
	backend, err := resource.Open(cfg.ResourceConfig())

Load validates the result; an invalid value is reported with the name of
the environment variable that sets it.
*/
package config
