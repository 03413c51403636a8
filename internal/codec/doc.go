// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package codec reads and writes the flat JSON documents catalogrec persists.
//
// Every resource is an array of flat objects (no nested objects or arrays):
//
//	[
//	{"id":1000,"name":"Mechanical Keyboard","category":"Electronics","price":99.99},
//	{"id":1001,"name":"Wireless Mouse","category":"Electronics","price":45.50}
//	]
//
// # Writing
//
// EncodeObject renders an ordered list of fields with no extra whitespace.
// Strings escape only the double quote, backslash, newline, carriage return
// and tab. Currency uses Fixed2, which always prints two fraction digits.
//
// # Reading
//
// Two readers are provided:
//
//   - DecodeArray and DecodeFlat go through goccy/go-json and a small value
//     model (null, bool, number, string, array, object). DecodeFlat rejects
//     nested values so only the shapes catalogrec writes are accepted.
//   - SplitTopLevelArray and ExtractField are byte scanners over the same
//     subset. The store uses SplitTopLevelArray to salvage members of a
//     document that no longer parses as a whole, and the CLI uses
//     ExtractField for its one-object "--add" arguments.
//
// Neither reader is a general JSON parser for arbitrary documents.
package codec
