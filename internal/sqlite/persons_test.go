// Unit tests for the person store: persons, meta rows, current filtering,
// and the full-directory projection.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

func TestPersonCRUD(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePerson("Ana Pop")
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	got, err := s.GetPerson(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)

	_, err = s.GetPerson(9999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCurrentPersons(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "excludes exactly the persons marked removed true",
			check: func(t *testing.T, s *Store) {
				kept, err := s.CreatePerson("Ana Pop")
				require.NoError(t, err)
				removed, err := s.CreatePerson("Ion Ionescu")
				require.NoError(t, err)
				require.NoError(t, s.SetMeta(removed.ID, types.MetaRemoved, "true"))

				persons, err := s.CurrentPersons()
				require.NoError(t, err)
				require.Len(t, persons, 1)
				assert.Equal(t, kept.ID, persons[0].ID)
			},
		},
		{
			name: "removed false does not exclude",
			check: func(t *testing.T, s *Store) {
				p, err := s.CreatePerson("Ana Pop")
				require.NoError(t, err)
				require.NoError(t, s.SetMeta(p.ID, types.MetaRemoved, "false"))

				persons, err := s.CurrentPersons()
				require.NoError(t, err)
				assert.Len(t, persons, 1)
			},
		},
		{
			name: "unrelated meta rows do not exclude",
			check: func(t *testing.T, s *Store) {
				p, err := s.CreatePerson("Ana Pop")
				require.NoError(t, err)
				require.NoError(t, s.SetMeta(p.ID, types.MetaOffice, "deputat"))
				require.NoError(t, s.SetMeta(p.ID, types.MetaCollege, "D12 București"))

				persons, err := s.CurrentPersons()
				require.NoError(t, err)
				assert.Len(t, persons, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}

func TestMeta(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePerson("Ana Pop")
	require.NoError(t, err)

	t.Run("miss returns not found without error", func(t *testing.T) {
		_, ok, err := s.GetMeta(p.ID, types.MetaOffice)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("first matching row wins when keys repeat", func(t *testing.T) {
		require.NoError(t, s.SetMeta(p.ID, types.MetaHpolID, "101"))
		require.NoError(t, s.SetMeta(p.ID, types.MetaHpolID, "202"))

		value, ok, err := s.GetMeta(p.ID, types.MetaHpolID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "101", value, "lookup is pinned to the oldest row")
	})

	t.Run("delete removes all rows for the key", func(t *testing.T) {
		require.NoError(t, s.DeleteMeta(p.ID, types.MetaHpolID))
		_, ok, err := s.GetMeta(p.ID, types.MetaHpolID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRemovePerson(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePerson("Ana Pop")
	require.NoError(t, err)
	_, err = s.SaveContentVersion(p.ID, types.Document{"phone": {"0712345"}}, nil)
	require.NoError(t, err)

	require.NoError(t, s.RemovePerson(p.ID))

	persons, err := s.CurrentPersons()
	require.NoError(t, err)
	assert.Empty(t, persons)

	// Soft removal keeps underlying data.
	doc, err := s.GetContent(p.ID)
	require.NoError(t, err)
	assert.Equal(t, types.Document{"phone": {"0712345"}}, doc)

	t.Run("flag reads back true", func(t *testing.T) {
		value, ok, err := s.GetMeta(p.ID, types.MetaRemoved)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "true", value)
	})

	t.Run("unknown person", func(t *testing.T) {
		err := s.RemovePerson(9999)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("repeated removal leaves a single flag", func(t *testing.T) {
		require.NoError(t, s.RemovePerson(p.ID))

		var count int
		err := s.db.QueryRow(
			"SELECT COUNT(*) FROM person_meta WHERE person_id = ? AND key = ?",
			p.ID, types.MetaRemoved,
		).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestGetPersons(t *testing.T) {
	s := newTestStore(t)

	ana, err := s.CreatePerson("Ana Pop")
	require.NoError(t, err)
	_, err = s.SaveContentVersion(ana.ID, types.Document{"phone": {"0712345"}}, nil)
	require.NoError(t, err)

	ion, err := s.CreatePerson("Ion Ionescu")
	require.NoError(t, err)

	gone, err := s.CreatePerson("Vasile Gone")
	require.NoError(t, err)
	require.NoError(t, s.RemovePerson(gone.ID))

	persons, err := s.GetPersons()
	require.NoError(t, err)
	require.Len(t, persons, 3)

	assert.Equal(t, types.Document{
		"phone": {"0712345"},
		"name":  {"Ana Pop"},
	}, persons[ana.ID])

	// A person with no versions still appears, with just the name.
	assert.Equal(t, types.Document{"name": {"Ion Ionescu"}}, persons[ion.ID])

	// Unlike CurrentPersons, the projection covers soft-removed persons too.
	assert.Equal(t, types.Document{"name": {"Vasile Gone"}}, persons[gone.ID])
}
