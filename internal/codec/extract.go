// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package codec

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// tokenDelimiters end an unquoted value.
const tokenDelimiters = " \t\n\r,}"

// ExtractField returns the value stored under key in a single flat object.
//
// The key is located as the literal text "<key>": and leading whitespace
// after it is skipped. A quoted value is returned unescaped, without the
// quotes. Any other value (numbers, true, false, null) is returned as the raw
// token up to the next space, tab, newline, carriage return, comma or closing
// brace.
//
// ok is false when the key is absent or its string value is unterminated.
// Callers treat an empty value as missing.
func ExtractField(object, key string) (value string, ok bool) {
	needle := `"` + key + `":`
	start := strings.Index(object, needle)
	if start < 0 {
		return "", false
	}
	pos := start + len(needle)
	for pos < len(object) && isSpace(object[pos]) {
		pos++
	}
	if pos >= len(object) {
		return "", false
	}

	if object[pos] == '"' {
		s, _, ok := scanString(object, pos+1)
		return s, ok
	}

	end := strings.IndexAny(object[pos:], tokenDelimiters)
	if end < 0 {
		return object[pos:], true
	}
	return object[pos : pos+end], true
}

// scanString reads a string body starting just after its opening quote.
// It returns the unescaped content and the index just past the closing
// quote.
func scanString(s string, pos int) (string, int, bool) {
	var b strings.Builder
	for pos < len(s) {
		c := s[pos]
		switch c {
		case '"':
			return b.String(), pos + 1, true
		case '\\':
			if pos+1 >= len(s) {
				return "", pos, false
			}
			n, consumed := unescape(s[pos+1:], &b)
			if !n {
				// Unknown escape: keep it verbatim.
				b.WriteByte('\\')
				b.WriteByte(s[pos+1])
				consumed = 1
			}
			pos += 1 + consumed
		default:
			b.WriteByte(c)
			pos++
		}
	}
	return "", pos, false
}

// unescape decodes the escape sequence at the start of s (the text after the
// backslash) into b. It reports whether the sequence was recognised and how
// many bytes of s it used.
func unescape(s string, b *strings.Builder) (bool, int) {
	switch s[0] {
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case '/':
		b.WriteByte('/')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'u':
		r, ok := hexRune(s[1:])
		if !ok {
			return false, 0
		}
		used := 5
		if utf16.IsSurrogate(r) && len(s) >= 11 && s[5] == '\\' && s[6] == 'u' {
			if r2, ok := hexRune(s[7:]); ok {
				if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
					r = dec
					used = 11
				}
			}
		}
		b.WriteRune(r)
		return true, used
	default:
		return false, 0
	}
	return true, 1
}

func hexRune(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
