// Unit tests for the roster import/merge.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

func TestImportRoster(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "creates a person and an email version on first import",
			check: func(t *testing.T, s *Store) {
				created, reused, err := s.ImportRoster([]types.RosterEntry{
					{Name: "Ion Ionescu", Emails: []string{"ion@example.com"}},
				})
				require.NoError(t, err)
				assert.Equal(t, 1, created)
				assert.Zero(t, reused)

				persons, err := s.CurrentPersons()
				require.NoError(t, err)
				require.Len(t, persons, 1)

				doc, err := s.GetContent(persons[0].ID)
				require.NoError(t, err)
				assert.Equal(t, types.Document{"email": {"ion@example.com"}}, doc)
			},
		},
		{
			name: "second import reuses the person and appends a version",
			check: func(t *testing.T, s *Store) {
				entries := []types.RosterEntry{
					{Name: "Ion Ionescu", Emails: []string{"ion@example.com"}},
				}
				_, _, err := s.ImportRoster(entries)
				require.NoError(t, err)

				created, reused, err := s.ImportRoster(entries)
				require.NoError(t, err)
				assert.Zero(t, created)
				assert.Equal(t, 1, reused)

				persons, err := s.CurrentPersons()
				require.NoError(t, err)
				require.Len(t, persons, 1, "no duplicate person")

				versions, err := s.Versions(persons[0].ID)
				require.NoError(t, err)
				assert.Len(t, versions, 2, "two versions with the same content")
			},
		},
		{
			name: "entries without emails create no version",
			check: func(t *testing.T, s *Store) {
				_, _, err := s.ImportRoster([]types.RosterEntry{
					{Name: "Ana Pop", Emails: []string{}},
				})
				require.NoError(t, err)

				persons, err := s.CurrentPersons()
				require.NoError(t, err)
				require.Len(t, persons, 1)

				versions, err := s.Versions(persons[0].ID)
				require.NoError(t, err)
				assert.Empty(t, versions)
			},
		},
		{
			name: "ambiguous name aborts with nothing committed",
			check: func(t *testing.T, s *Store) {
				_, err := s.CreatePerson("Ion Ionescu")
				require.NoError(t, err)
				_, err = s.CreatePerson("Ion Ionescu")
				require.NoError(t, err)

				_, _, err = s.ImportRoster([]types.RosterEntry{
					{Name: "Ana Pop", Emails: []string{"ana@example.com"}},
					{Name: "Ion Ionescu", Emails: []string{"ion@example.com"}},
				})
				assert.ErrorIs(t, err, types.ErrAmbiguousName)

				// The earlier entry of the same batch is rolled back too.
				persons, err := s.CurrentPersons()
				require.NoError(t, err)
				assert.Len(t, persons, 2, "only the pre-existing duplicates remain")

				for _, p := range persons {
					versions, err := s.Versions(p.ID)
					require.NoError(t, err)
					assert.Empty(t, versions)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"name": "Ion Ionescu", "emails": ["ion@example.com"]},
  {"name": "Ana Pop", "emails": []}
]`), 0o644))

	entries, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ion Ionescu", entries[0].Name)
	assert.Equal(t, []string{"ion@example.com"}, entries[0].Emails)
	assert.Empty(t, entries[1].Emails)

	t.Run("malformed JSON fails", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"name": "x"}`), 0o644))
		_, err := LoadRoster(bad)
		assert.Error(t, err)
	})
}
