// Unit tests for attribute definition seeding on store attach.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

func TestSeedAttributeDefs(t *testing.T) {
	s := newTestStore(t)

	defs, err := s.AttributeDefs()
	require.NoError(t, err)
	require.Len(t, defs, len(types.BuiltInAttributes))

	// Ordered by key.
	assert.Equal(t, "address", defs[0].Key)
	assert.Equal(t, "website", defs[len(defs)-1].Key)

	// Labels come from the built-in definitions.
	byKey := make(map[string]string)
	for _, def := range defs {
		byKey[def.Key] = def.Label
	}
	assert.Equal(t, "Telefon", byKey["phone"])
	assert.Equal(t, "Adresa poștală", byKey["address"])
}

func TestSeedIsIdempotentAcrossAttaches(t *testing.T) {
	s := newTestStore(t)
	dataDir := s.config.DataDir
	require.NoError(t, s.Detach())

	err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.NoError(t, err)

	defs, err := s.AttributeDefs()
	require.NoError(t, err)
	assert.Len(t, defs, len(types.BuiltInAttributes), "reattach must not duplicate seeds")
}
