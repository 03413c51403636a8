// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package codec

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeArray(t *testing.T) {
	t.Parallel()

	members, err := DecodeArray([]byte("  [\n{\"a\":1},\n {\"b\":\"x,}\"}\n]\n"))
	if err != nil {
		t.Fatalf("DecodeArray() error = %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("DecodeArray() returned %d members, want 2", len(members))
	}
	if members[1] != `{"b":"x,}"}` {
		t.Errorf("members[1] = %q", members[1])
	}

	empty, err := DecodeArray([]byte(EmptyArray))
	if err != nil || len(empty) != 0 {
		t.Errorf("DecodeArray([]) = %v, %v", empty, err)
	}

	for _, bad := range []string{"", `{"a":1}`, `[{"a":1}`, `not json`} {
		if _, err := DecodeArray([]byte(bad)); err == nil {
			t.Errorf("DecodeArray(%q) expected error", bad)
		}
	}
}

func TestDecodeFlat(t *testing.T) {
	t.Parallel()

	obj, err := DecodeFlat(`{"id":1001,"name":"Wireless \"Pro\" Mouse","price":45.50,"flag":true,"gone":null}`)
	if err != nil {
		t.Fatalf("DecodeFlat() error = %v", err)
	}

	id, err := obj.Int("id")
	if err != nil || id != 1001 {
		t.Errorf("Int(id) = %d, %v", id, err)
	}
	name, err := obj.String("name")
	if err != nil || name != `Wireless "Pro" Mouse` {
		t.Errorf("String(name) = %q, %v", name, err)
	}
	price, err := obj.Decimal("price")
	if err != nil || !price.Equal(decimal.RequireFromString("45.5")) {
		t.Errorf("Decimal(price) = %s, %v", price, err)
	}
	if obj["flag"].Kind != KindBool {
		t.Errorf("flag kind = %s, want bool", obj["flag"].Kind)
	}

	if _, err := obj.String("gone"); !errors.Is(err, ErrMissingField) {
		t.Errorf("null field error = %v, want ErrMissingField", err)
	}
	if _, err := obj.Int("absent"); !errors.Is(err, ErrMissingField) {
		t.Errorf("absent field error = %v, want ErrMissingField", err)
	}
	if _, err := obj.Int("name"); !errors.Is(err, ErrFieldType) {
		t.Errorf("Int(name) error = %v, want ErrFieldType", err)
	}
	if _, err := obj.Int("price"); !errors.Is(err, ErrFieldType) {
		t.Errorf("Int(price) error = %v, want ErrFieldType", err)
	}
	if _, err := obj.String("id"); !errors.Is(err, ErrFieldType) {
		t.Errorf("String(id) error = %v, want ErrFieldType", err)
	}
}

func TestDecodeFlat_QuotedNumbers(t *testing.T) {
	t.Parallel()

	obj, err := DecodeFlat(`{"id":"1050","price":"9.99"}`)
	if err != nil {
		t.Fatalf("DecodeFlat() error = %v", err)
	}
	if id, err := obj.Int("id"); err != nil || id != 1050 {
		t.Errorf("Int(id) = %d, %v", id, err)
	}
	if p, err := obj.Decimal("price"); err != nil || p.StringFixed(2) != "9.99" {
		t.Errorf("Decimal(price) = %s, %v", p, err)
	}
}

func TestDecodeFlat_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		member  string
		wantErr error
	}{
		{"nested object", `{"a":{"b":1}}`, ErrNested},
		{"nested array", `{"a":[1,2]}`, ErrNested},
		{"array member", `[1]`, ErrNotObject},
		{"null member", `null`, ErrNotObject},
		{"truncated", `{"a":1`, ErrNotObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := DecodeFlat(tt.member); !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeFlat(%s) error = %v, want %v", tt.member, err, tt.wantErr)
			}
		})
	}
}
