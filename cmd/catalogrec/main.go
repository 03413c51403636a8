// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package main is the catalogrec command line tool.
//
// Each invocation loads the persisted catalog, runs one command, saves any
// change and prints exactly one JSON document on stdout. The exit status is
// 0 on success and 1 when the document is an error.
//
// # Commands
//
//	catalogrec get products
//	catalogrec get users
//	catalogrec get reviews <product_id>
//	catalogrec add-user <name>
//	catalogrec add-product <name> <category> <price>
//	catalogrec add-review <user_id> <product_id> <rating> <comment>
//	catalogrec delete-user <user_id>
//	catalogrec delete-product <product_id>
//	catalogrec recommend <user_id>
//	catalogrec purchase <user_id> <product_id>
//	catalogrec rate <user_id> <product_id> <rating>
//	catalogrec add user|product|review '<json>'
//
// The flag form of every command is accepted as well, e.g.
// "catalogrec --get products" or "catalogrec --add-user Alice".
//
// # Configuration
//
// Configuration is loaded via Koanf v2 (see internal/config):
//   - Environment variables (CATALOGREC_DATA_DIR, CATALOGREC_BACKEND, LOG_LEVEL, ...)
//   - Config file (catalogrec.yaml, or the path in CATALOGREC_CONFIG)
//   - Built-in defaults
//
// Logs go to stderr (or LOG_FILE) so stdout only carries the response.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
