package metrics

// NoopCollector is a no-op implementation used when metrics are disabled.
type NoopCollector struct{}

// NewNoopCollector creates a no-op collector.
func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoopCollector) RecordOperation(operation string, status string) {}

// RecordError does nothing when metrics are disabled.
func (n *NoopCollector) RecordError(operation string, errorType string) {}

// SetEntityCount does nothing when metrics are disabled.
func (n *NoopCollector) SetEntityCount(entity string, count int64) {}
