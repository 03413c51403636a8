// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/catalogrec/internal/models"
)

// Status label values.
const (
	StatusSuccess = "success"
)

var (
	// Command Metrics
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogrec_operations_total",
			Help: "Total number of catalog operations by outcome",
		},
		[]string{"operation", "status"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalogrec_operation_duration_seconds",
			Help:    "Duration of catalog operations in seconds, including reload and save",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Store Metrics
	RecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogrec_records_dropped_total",
			Help: "Total number of persisted records skipped because they did not decode",
		},
		[]string{"resource"},
	)

	RecordsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalogrec_records_loaded",
			Help: "Number of records held after the last load",
		},
		[]string{"resource"},
	)

	StoreLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalogrec_store_load_duration_seconds",
			Help:    "Time spent reading and decoding all resources",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	StoreSeeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalogrec_store_seeded_total",
			Help: "Number of times the default catalog was written to an empty store",
		},
	)

	// Resource Metrics
	ResourceWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogrec_resource_writes_total",
			Help: "Total number of resource document writes",
		},
		[]string{"resource", "backend"},
	)

	ResourceWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogrec_resource_write_failures_total",
			Help: "Total number of resource document writes that failed",
		},
		[]string{"resource", "backend"},
	)

	ResourceBytesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogrec_resource_bytes_written_total",
			Help: "Total bytes written per resource",
		},
		[]string{"resource"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogrec_recommend_requests_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalogrec_recommend_candidates",
			Help:    "Number of unreviewed same-category candidates per query",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 25, 50, 100},
		},
	)
)

// StatusFor returns the status label for an operation result: "success" or
// the lower-cased error kind.
func StatusFor(err error) string {
	if err == nil {
		return StatusSuccess
	}
	return strings.ToLower(models.Kind(err))
}

// RecordOperation records a finished catalog operation
func RecordOperation(operation string, duration time.Duration, err error) {
	OperationsTotal.WithLabelValues(operation, StatusFor(err)).Inc()
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDroppedRecord counts one skipped member of resource.
func RecordDroppedRecord(resource string) {
	RecordsDropped.WithLabelValues(resource).Inc()
}

// RecordStoreLoad records a completed load and the record count per resource.
func RecordStoreLoad(duration time.Duration, counts map[string]int) {
	StoreLoadDuration.Observe(duration.Seconds())
	for resource, n := range counts {
		RecordsLoaded.WithLabelValues(resource).Set(float64(n))
	}
}

// RecordSeed counts a bootstrap of the default catalog.
func RecordSeed() {
	StoreSeeded.Inc()
}

// RecordResourceWrite records a document write attempt.
func RecordResourceWrite(resource, backend string, size int, err error) {
	ResourceWrites.WithLabelValues(resource, backend).Inc()
	if err != nil {
		ResourceWriteFailures.WithLabelValues(resource, backend).Inc()
		return
	}
	ResourceBytesWritten.WithLabelValues(resource).Add(float64(size))
}

// RecordRecommendation records a recommendation query. candidates is
// ignored when the query failed before candidates were collected.
func RecordRecommendation(err error, candidates int) {
	RecommendRequests.WithLabelValues(StatusFor(err)).Inc()
	if err == nil {
		RecommendCandidates.Observe(float64(candidates))
	}
}

// WriteTextfile writes every metric in the default registry to path in the
// text exposition format read by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(prometheus.DefaultGatherer, path)
}

// WriteTextfileFrom writes the metrics gathered from g to path.
func WriteTextfileFrom(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
