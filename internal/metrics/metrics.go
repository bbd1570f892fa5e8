package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromCollector provides Prometheus metrics collection for store operations.
type PromCollector struct {
	operationsTotal *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	entityCount     *prometheus.GaugeVec
	registry        *prometheus.Registry
}

// NewCollector creates a new Prometheus metrics collector with its own
// registry.
func NewCollector() *PromCollector {
	registry := prometheus.NewRegistry()

	operationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_operations_total",
			Help: "Total number of store operations by type and status",
		},
		[]string{"operation", "status"},
	)

	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_errors_total",
			Help: "Total number of errors by operation and error type",
		},
		[]string{"operation", "error_type"},
	)

	entityCount := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agenda_entity_count",
			Help: "Current count of stored entities by type",
		},
		[]string{"entity"},
	)

	registry.MustRegister(operationsTotal)
	registry.MustRegister(errorsTotal)
	registry.MustRegister(entityCount)

	return &PromCollector{
		operationsTotal: operationsTotal,
		errorsTotal:     errorsTotal,
		entityCount:     entityCount,
		registry:        registry,
	}
}

// RecordOperation records the completion of an operation.
func (m *PromCollector) RecordOperation(operation string, status string) {
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordError records an error occurrence.
func (m *PromCollector) RecordError(operation string, errorType string) {
	m.errorsTotal.WithLabelValues(operation, errorType).Inc()
}

// SetEntityCount sets the current count for an entity type.
func (m *PromCollector) SetEntityCount(entity string, count int64) {
	m.entityCount.WithLabelValues(entity).Set(float64(count))
}

// Registry returns the Prometheus registry for HTTP exposure.
func (m *PromCollector) Registry() *prometheus.Registry {
	return m.registry
}
