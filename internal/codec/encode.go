// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package codec

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field is one key/value pair of an encoded object. The value is stored
// already rendered; use the constructors below to build fields.
type Field struct {
	Key string
	raw string
}

// String returns a string-valued field.
func String(key, value string) Field {
	return Field{Key: key, raw: `"` + EscapeString(value) + `"`}
}

// Int returns an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, raw: strconv.Itoa(value)}
}

// Fixed2 returns a decimal field rendered with exactly two fraction digits.
func Fixed2(key string, value decimal.Decimal) Field {
	return Field{Key: key, raw: value.StringFixed(2)}
}

// Float2 returns a float field rendered with exactly two fraction digits.
func Float2(key string, value float64) Field {
	return Field{Key: key, raw: FormatFixed2(value)}
}

// Raw returns the rendered value of the field.
func (f Field) Raw() string {
	return f.raw
}

// EncodeObject renders fields, in order, as a flat JSON object.
func EncodeObject(fields ...Field) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(EscapeString(f.Key))
		b.WriteString(`":`)
		b.WriteString(f.raw)
	}
	b.WriteByte('}')
	return b.String()
}

// EscapeString escapes the characters that cannot appear raw inside a
// quoted value. Newline, carriage return and tab use their short forms and
// the remaining control bytes below 0x20 use \u00XX. Everything else is
// written unchanged.
func EscapeString(s string) string {
	if !needsEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
				continue
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}

// FormatFixed2 formats v with exactly two fraction digits.
func FormatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
