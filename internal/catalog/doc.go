// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package catalog is the command layer of catalogrec.

A Service exposes one method per command. Every method follows the same
sequence against the store:

 1. reload all persisted state (Store.Load)
 2. validate the input (internal/validation)
 3. query or mutate the in-memory collections
 4. save, for mutating commands (Store.Save)
 5. return a typed response

Reloading right before a mutation and saving right after it keeps the
window for lost updates small; concurrent processes still follow
last-write-wins.

# Errors

Errors wrap the kinds in internal/models. Render turns them into the error
document printed by the CLI:

	{"status":"error","code":"NOT_FOUND","message":"User not found."}

A failed save is logged and counted but does not fail the command, unless
Config.StrictWrites is set, in which case it is reported as RESOURCE_ACCESS.

# Rendering

Success payloads are marshaled with goccy/go-json. Prices and average
ratings are always emitted as numbers with two fraction digits:

	{"products":[{"id":1000,"name":"Mechanical Keyboard","category":"Electronics",
	  "price":99.99,"avg_rating":5.00,"reviews_count":1}]}

# Observability

Each command gets a request ID and operation name on its context (see
internal/logging), is timed into catalogrec_operations_total and
catalogrec_operation_duration_seconds, and is logged at debug level.
*/
package catalog
