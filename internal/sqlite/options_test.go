// Unit tests for store construction options: logger and metrics injection.
package sqlite

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romargo/agenda-politicieni/internal/metrics"
	"github.com/Romargo/agenda-politicieni/pkg/types"
)

func TestWithMetricsCountsOperations(t *testing.T) {
	collector := metrics.NewCollector()

	s := NewStore(WithMetrics(collector), WithLogger(zerolog.Nop()))
	err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Detach() })

	p, err := s.CreatePerson("Ana Pop")
	require.NoError(t, err)
	_, err = s.SaveContentVersion(p.ID, types.Document{"phone": {"0712345"}}, nil)
	require.NoError(t, err)
	_, err = s.SaveContentVersion(p.ID, types.Document{"phone": {"0798765"}}, nil)
	require.NoError(t, err)

	families, err := collector.Registry().Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() != "agenda_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "operation" && label.GetValue() == "save_content_version" {
					found = true
					assert.Equal(t, float64(2), m.GetCounter().GetValue())
				}
			}
		}
	}
	assert.True(t, found, "save_content_version operations should be counted")
}
