// This file implements the one-off legacy-property migration: deprecated
// flat person_property rows become one content version per person.
package sqlite

import (
	"fmt"
	"time"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// MigrateLegacyProperties groups person_property rows by key into a document
// per person (values kept in original row order), deletes the legacy rows,
// and writes one new content version per person. The whole batch commits
// once at the end; a failure mid-loop rolls everything back. Returns the
// number of persons migrated.
//
// The routine expects exclusive access to the store: it is a batch tool, not
// a request path, and has no checkpointing. An interrupted run is re-run
// from scratch.
func (s *Store) MigrateLegacyProperties() (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	rows, err := db.Query(
		"SELECT person_id, key, value FROM person_property ORDER BY person_id ASC, id ASC",
	)
	if err != nil {
		return 0, fmt.Errorf("fetching legacy properties: %w", err)
	}
	defer rows.Close()

	docs := make(map[int64]types.Document)
	var order []int64
	for rows.Next() {
		var personID int64
		var key, value string
		if err := rows.Scan(&personID, &key, &value); err != nil {
			return 0, fmt.Errorf("scanning legacy property: %w", err)
		}
		doc, ok := docs[personID]
		if !ok {
			doc = types.Document{}
			docs[personID] = doc
			order = append(order, personID)
		}
		doc.Add(key, value)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating legacy properties: %w", err)
	}
	rows.Close()

	if len(order) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning migration transaction: %w", err)
	}
	defer tx.Rollback()

	nowStr := time.Now().UTC().Format(time.RFC3339)
	for _, personID := range order {
		content, err := encodeDocument(docs[personID])
		if err != nil {
			return 0, err
		}

		if _, err := tx.Exec("DELETE FROM person_property WHERE person_id = ?", personID); err != nil {
			return 0, fmt.Errorf("deleting legacy properties for person %d: %w", personID, err)
		}
		_, err = tx.Exec(
			"INSERT INTO content_version (person_id, user_id, time, content) VALUES (?, NULL, ?, ?)",
			personID, nowStr, content,
		)
		if err != nil {
			return 0, fmt.Errorf("writing migrated version for person %d: %w", personID, err)
		}

		s.log.Info().Int64("person_id", personID).Msg("legacy properties migrated")
	}

	if err := tx.Commit(); err != nil {
		s.metrics.RecordError("migrate_legacy_properties", "commit")
		return 0, fmt.Errorf("committing migration: %w", err)
	}

	s.metrics.RecordOperation("migrate_legacy_properties", "ok")
	s.metrics.SetEntityCount("migrated_persons", int64(len(order)))

	return len(order), nil
}
