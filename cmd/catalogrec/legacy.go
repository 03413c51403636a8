// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import "strings"

// legacyCommands are the commands that may be spelled as a leading flag.
var legacyCommands = map[string]bool{
	"get":            true,
	"add":            true,
	"add-user":       true,
	"add-product":    true,
	"add-review":     true,
	"delete-user":    true,
	"delete-product": true,
	"recommend":      true,
	"purchase":       true,
	"rate":           true,
}

// rewriteLegacyArgs turns "--get products" into "get products". Only the
// first token is rewritten, so values that start with "--" are untouched.
func rewriteLegacyArgs(args []string) []string {
	if len(args) == 0 || !strings.HasPrefix(args[0], "--") {
		return args
	}
	name := strings.TrimPrefix(args[0], "--")
	if !legacyCommands[name] {
		return args
	}
	out := make([]string, len(args))
	out[0] = name
	copy(out[1:], args[1:])
	return out
}
