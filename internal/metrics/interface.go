// Package metrics provides operation counters for the agenda store.
// Implementations include the Prometheus-backed collector and the no-op
// collector used when metrics exposure is not wanted.
package metrics

// Collector is the interface for metrics collection.
type Collector interface {
	RecordOperation(operation string, status string)
	RecordError(operation string, errorType string)
	SetEntityCount(entity string, count int64)
}
