// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Decoding errors.
var (
	ErrNotArray     = errors.New("document is not a JSON array")
	ErrNotObject    = errors.New("member is not a JSON object")
	ErrNested       = errors.New("nested value in flat object")
	ErrMissingField = errors.New("missing field")
	ErrFieldType    = errors.New("unexpected field type")
)

// Kind identifies the JSON type of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one decoded JSON value. Numbers keep their source text so integer
// and decimal fields are parsed exactly.
type Value struct {
	Kind Kind
	Raw  json.RawMessage
	str  string
}

// Text returns the string content for KindString and the source text for
// every other kind.
func (v Value) Text() string {
	if v.Kind == KindString {
		return v.str
	}
	return string(v.Raw)
}

// FlatObject is a decoded object whose values are all scalars.
type FlatObject map[string]Value

// DecodeArray splits a well-formed JSON array into the raw text of its
// members. Surrounding whitespace is allowed.
func DecodeArray(doc []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("decode array: %w", err)
	}
	members := make([]string, 0, len(raw))
	for _, m := range raw {
		members = append(members, string(bytes.TrimSpace(m)))
	}
	return members, nil
}

// DecodeFlat decodes a single object and rejects nested objects and arrays.
func DecodeFlat(member string) (FlatObject, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(member), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if raw == nil {
		// The literal null decodes into a nil map.
		return nil, ErrNotObject
	}

	obj := make(FlatObject, len(raw))
	for key, msg := range raw {
		v, err := classify(msg)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		if v.Kind == KindArray || v.Kind == KindObject {
			return nil, fmt.Errorf("field %q: %w", key, ErrNested)
		}
		obj[key] = v
	}
	return obj, nil
}

func classify(msg json.RawMessage) (Value, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return Value{}, ErrFieldType
	}
	v := Value{Raw: msg}
	switch msg[0] {
	case 'n':
		v.Kind = KindNull
	case 't', 'f':
		v.Kind = KindBool
	case '"':
		v.Kind = KindString
		if err := json.Unmarshal(msg, &v.str); err != nil {
			return Value{}, fmt.Errorf("decode string: %w", err)
		}
	case '[':
		v.Kind = KindArray
	case '{':
		v.Kind = KindObject
	default:
		v.Kind = KindNumber
	}
	return v, nil
}

func (o FlatObject) lookup(key string) (Value, error) {
	v, ok := o[key]
	if !ok || v.Kind == KindNull {
		return Value{}, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	return v, nil
}

// String returns the string field key.
func (o FlatObject) String(key string) (string, error) {
	v, err := o.lookup(key)
	if err != nil {
		return "", err
	}
	if v.Kind != KindString {
		return "", fmt.Errorf("%w: %q is %s, want string", ErrFieldType, key, v.Kind)
	}
	return v.str, nil
}

// Int returns the integer field key. A string holding an integer is
// accepted as well.
func (o FlatObject) Int(key string) (int, error) {
	v, err := o.lookup(key)
	if err != nil {
		return 0, err
	}
	if v.Kind != KindNumber && v.Kind != KindString {
		return 0, fmt.Errorf("%w: %q is %s, want integer", ErrFieldType, key, v.Kind)
	}
	n, err := strconv.Atoi(v.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrFieldType, key, err)
	}
	return n, nil
}

// Decimal returns the numeric field key as an exact decimal. A string
// holding a number is accepted as well.
func (o FlatObject) Decimal(key string) (decimal.Decimal, error) {
	v, err := o.lookup(key)
	if err != nil {
		return decimal.Zero, err
	}
	if v.Kind != KindNumber && v.Kind != KindString {
		return decimal.Zero, fmt.Errorf("%w: %q is %s, want number", ErrFieldType, key, v.Kind)
	}
	d, err := decimal.NewFromString(v.Text())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrFieldType, key, err)
	}
	return d, nil
}
