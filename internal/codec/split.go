// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package codec

import (
	"strings"
)

// EmptyArray is the canonical text of a resource with no records.
const EmptyArray = "[]"

// SplitTopLevelArray returns the member objects of a text of the form
// [ obj, obj, ... ].
//
// A comma separates members only at brace depth zero. Braces and commas
// inside string literals are ignored. Each member is trimmed of surrounding
// whitespace; members that end up empty or contain no '{' are dropped.
//
// Input shorter than two bytes, or not starting with '[' and ending with
// ']', yields no members.
func SplitTopLevelArray(text string) []string {
	if len(text) < 2 || text[0] != '[' || text[len(text)-1] != ']' {
		return nil
	}
	content := text[1 : len(text)-1]

	var (
		members  []string
		start    int
		depth    int
		inString bool
		escaped  bool
	)
	for i := 0; i < len(content); i++ {
		c := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				members = appendMember(members, content[start:i])
				start = i + 1
			}
		}
	}
	if start < len(content) {
		members = appendMember(members, content[start:])
	}
	return members
}

func appendMember(members []string, raw string) []string {
	m := strings.TrimSpace(raw)
	if m == "" || !strings.Contains(m, "{") {
		return members
	}
	return append(members, m)
}

// JoinArray renders already-encoded objects as a resource document: the
// opening bracket, one object per line separated by commas, and the closing
// bracket.
func JoinArray(objects []string) string {
	var b strings.Builder
	b.WriteString("[\n")
	for i, obj := range objects {
		b.WriteString(obj)
		if i < len(objects)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(']')
	return b.String()
}
