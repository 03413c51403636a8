// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package codec

import "testing"

func TestExtractField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		object string
		key    string
		want   string
		wantOK bool
	}{
		{"integer", `{"id":1000,"name":"x"}`, "id", "1000", true},
		{"last integer before brace", `{"name":"x","id":7}`, "id", "7", true},
		{"decimal", `{"price":45.50}`, "price", "45.50", true},
		{"string", `{"name":"Wireless Mouse"}`, "name", "Wireless Mouse", true},
		{"whitespace after colon", `{"name":   "Alice", "id": 5 }`, "name", "Alice", true},
		{"whitespace before delimiter", `{"id": 5 }`, "id", "5", true},
		{"newline delimited", "{\"id\":5\n}", "id", "5", true},
		{"escaped quote", `{"c":"a \"b\" c"}`, "c", `a "b" c`, true},
		{"escaped backslash before quote", `{"c":"dir\\","d":1}`, "c", `dir\`, true},
		{"unicode escape", `{"c":"caf\u00e9"}`, "c", "café", true},
		{"surrogate pair", `{"c":"\ud83d\ude00"}`, "c", "\U0001F600", true},
		{"empty string", `{"c":""}`, "c", "", true},
		{"boolean", `{"ok":true}`, "ok", "true", true},
		{"token runs to end", `{"id":12`, "id", "12", true},
		{"missing key", `{"id":1}`, "name", "", false},
		{"unterminated string", `{"name":"abc`, "name", "", false},
		{"key at end of input", `{"name":`, "name", "", false},
		{"unknown escape kept", `{"c":"a\qb"}`, "c", `a\qb`, true},
		{"prefix key not matched", `{"user_id":3}`, "id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractField(tt.object, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("ExtractField(%s, %q) ok = %v, want %v", tt.object, tt.key, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ExtractField(%s, %q) = %q, want %q", tt.object, tt.key, got, tt.want)
			}
		})
	}
}
