// Unit tests for store lifecycle: attach, detach, and detached-state errors.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// newTestStore creates a store attached to a fresh database in a temp
// directory. Detach is registered as cleanup.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	err := s.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Detach() })

	return s
}

func TestStoreLifecycle(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "attach twice returns ErrAlreadyAttached",
			check: func(t *testing.T, s *Store) {
				err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
				assert.ErrorIs(t, err, types.ErrAlreadyAttached)
			},
		},
		{
			name: "detach is idempotent",
			check: func(t *testing.T, s *Store) {
				require.NoError(t, s.Detach())
				require.NoError(t, s.Detach())
			},
		},
		{
			name: "operations after detach return ErrStoreDetached",
			check: func(t *testing.T, s *Store) {
				require.NoError(t, s.Detach())

				_, err := s.GetUser("https://id.example.com/ana")
				assert.ErrorIs(t, err, types.ErrStoreDetached)

				_, err = s.CurrentPersons()
				assert.ErrorIs(t, err, types.ErrStoreDetached)

				_, err = s.GetContent(1)
				assert.ErrorIs(t, err, types.ErrStoreDetached)
			},
		},
		{
			name: "schema survives reattach",
			check: func(t *testing.T, s *Store) {
				p, err := s.CreatePerson("Ana Pop")
				require.NoError(t, err)

				dataDir := s.config.DataDir
				require.NoError(t, s.Detach())

				err = s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
				require.NoError(t, err)

				got, err := s.GetPerson(p.ID)
				require.NoError(t, err)
				assert.Equal(t, "Ana Pop", got.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}

func TestAttachValidatesConfig(t *testing.T) {
	s := NewStore()

	err := s.Attach(types.Config{Backend: "", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	err = s.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
