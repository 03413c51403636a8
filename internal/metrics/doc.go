// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package metrics provides Prometheus metrics for catalog operations.

Collectors are registered with the default registry at package init through
promauto. catalogrec runs once per invocation, so instead of serving a
/metrics endpoint the CLI can dump the registry to a file after each command:

	CATALOGREC_METRICS_TEXTFILE=/var/lib/node_exporter/catalogrec.prom catalogrec get products

The node_exporter textfile collector picks the file up on its next scrape.

# Available Metrics

Command Metrics:
  - catalogrec_operations_total: Operations (counter)
    Labels: operation, status (success or lower-cased error kind)
  - catalogrec_operation_duration_seconds: Operation latency (histogram)
    Labels: operation

Store Metrics:
  - catalogrec_records_dropped_total: Skipped undecodable records (counter)
    Labels: resource
  - catalogrec_records_loaded: Records held after the last load (gauge)
    Labels: resource
  - catalogrec_store_load_duration_seconds: Load latency (histogram)
  - catalogrec_store_seeded_total: Default catalog bootstraps (counter)

Resource Metrics:
  - catalogrec_resource_writes_total: Document writes (counter)
    Labels: resource, backend
  - catalogrec_resource_write_failures_total: Failed writes (counter)
    Labels: resource, backend
  - catalogrec_resource_bytes_written_total: Bytes written (counter)
    Labels: resource

Recommendation Metrics:
  - catalogrec_recommend_requests_total: Queries (counter)
    Labels: outcome
  - catalogrec_recommend_candidates: Candidate set size (histogram)

# Usage

	start := time.Now()
	payload, err := svc.ListProducts(ctx)
	metrics.RecordOperation("get_products", time.Since(start), err)
*/
package metrics
