// This file implements the destructive fixture import: the store is reset
// (schema dropped and recreated) and repopulated from fixture records.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// ImportFixture resets the store and creates one person per record with its
// explicit id, plus one content version where every attribute becomes a
// single-valued list. No confirmation and no backup: callers invoke this
// only when data loss is acceptable.
func (s *Store) ImportFixture(records []types.FixtureRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	// Validate before the reset so a bad fixture cannot wipe the store.
	for _, rec := range records {
		if rec.ID <= 0 {
			return fmt.Errorf("fixture record %q: %w", rec.Name, types.ErrInvalidID)
		}
	}

	if err := resetSchema(db); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning fixture transaction: %w", err)
	}
	defer tx.Rollback()

	nowStr := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		if _, err := tx.Exec("INSERT INTO person (id, name) VALUES (?, ?)", rec.ID, rec.Name); err != nil {
			return fmt.Errorf("creating person %d: %w", rec.ID, err)
		}

		doc := types.Document{}
		for key, value := range rec.Attributes {
			doc[key] = []string{value}
		}
		content, err := encodeDocument(doc)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			"INSERT INTO content_version (person_id, user_id, time, content) VALUES (?, NULL, ?, ?)",
			rec.ID, nowStr, content,
		)
		if err != nil {
			return fmt.Errorf("writing fixture version for person %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.metrics.RecordError("import_fixture", "commit")
		return fmt.Errorf("committing fixture import: %w", err)
	}

	s.log.Info().Int("persons", len(records)).Msg("fixture imported")
	s.metrics.RecordOperation("import_fixture", "ok")
	s.metrics.SetEntityCount("persons", int64(len(records)))

	return nil
}

// LoadFixture reads a fixture file: a JSON array of objects, each with at
// least "id" and "name"; all other keys become single-valued attributes.
func LoadFixture(path string) ([]types.FixtureRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes fixture records from JSON. Scalar attribute values
// are stringified; null, object, and array values are skipped.
func ParseFixture(data []byte) ([]types.FixtureRecord, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing fixture JSON: %w", err)
	}

	records := make([]types.FixtureRecord, 0, len(raw))
	for i, obj := range raw {
		id, ok := obj["id"].(float64)
		if !ok {
			return nil, fmt.Errorf("fixture record %d: missing or non-numeric id", i)
		}
		name, ok := obj["name"].(string)
		if !ok {
			return nil, fmt.Errorf("fixture record %d: missing name", i)
		}

		rec := types.FixtureRecord{
			ID:         int64(id),
			Name:       name,
			Attributes: make(map[string]string),
		}
		for key, value := range obj {
			if key == "id" || key == "name" {
				continue
			}
			switch v := value.(type) {
			case string:
				rec.Attributes[key] = v
			case float64, bool:
				rec.Attributes[key] = fmt.Sprint(v)
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
