// This file implements the external roster import/merge: entries are matched
// to existing persons by exact name, created when absent, and their email
// lists recorded as new content versions.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// ImportRoster merges roster entries into the directory. For each entry the
// person is resolved by exact name match: exactly one match reuses it, none
// creates a new person, and more than one fails the whole import with
// ErrAmbiguousName before anything is committed. An ambiguous merge target
// is a data-integrity error requiring a manual fix, not something to resolve
// silently. Entries carrying emails get one new content version holding just
// the email list. A single commit covers the whole batch.
func (s *Store) ImportRoster(entries []types.RosterEntry) (created, reused int, err error) {
	db, err := s.conn()
	if err != nil {
		return 0, 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("beginning roster transaction: %w", err)
	}
	defer tx.Rollback()

	nowStr := time.Now().UTC().Format(time.RFC3339)
	for _, entry := range entries {
		rows, err := tx.Query("SELECT id FROM person WHERE name = ? ORDER BY id ASC", entry.Name)
		if err != nil {
			return 0, 0, fmt.Errorf("matching roster entry %q: %w", entry.Name, err)
		}
		var ids []int64
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return 0, 0, fmt.Errorf("scanning person id: %w", err)
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return 0, 0, fmt.Errorf("iterating person matches: %w", err)
		}

		var personID int64
		switch len(ids) {
		case 0:
			res, err := tx.Exec("INSERT INTO person (name) VALUES (?)", entry.Name)
			if err != nil {
				return 0, 0, fmt.Errorf("creating person %q: %w", entry.Name, err)
			}
			personID, err = res.LastInsertId()
			if err != nil {
				return 0, 0, fmt.Errorf("resolving new person id: %w", err)
			}
			created++
			s.log.Info().Str("name", entry.Name).Int64("person_id", personID).Msg("roster person created")
		case 1:
			personID = ids[0]
			reused++
		default:
			s.metrics.RecordError("import_roster", "ambiguous_name")
			return 0, 0, fmt.Errorf("roster entry %q matches %d persons: %w",
				entry.Name, len(ids), types.ErrAmbiguousName)
		}

		if len(entry.Emails) > 0 {
			content, err := encodeDocument(types.Document{types.AttrEmail: entry.Emails})
			if err != nil {
				return 0, 0, err
			}
			_, err = tx.Exec(
				"INSERT INTO content_version (person_id, user_id, time, content) VALUES (?, NULL, ?, ?)",
				personID, nowStr, content,
			)
			if err != nil {
				return 0, 0, fmt.Errorf("writing roster version for person %d: %w", personID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		s.metrics.RecordError("import_roster", "commit")
		return 0, 0, fmt.Errorf("committing roster import: %w", err)
	}

	s.log.Info().Int("created", created).Int("reused", reused).Msg("roster imported")
	s.metrics.RecordOperation("import_roster", "ok")

	return created, reused, nil
}

// LoadRoster reads a roster file: a JSON array of objects with "name" and
// "emails" (array of strings, possibly empty).
func LoadRoster(path string) ([]types.RosterEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var entries []types.RosterEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing roster JSON: %w", err)
	}
	return entries, nil
}
