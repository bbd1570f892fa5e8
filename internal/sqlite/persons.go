// This file implements the person store: person rows, the person_meta
// side-table, and the full-directory projection.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// CreatePerson creates a person with a generated id.
func (s *Store) CreatePerson(name string) (*types.Person, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	res, err := db.Exec("INSERT INTO person (name) VALUES (?)", name)
	if err != nil {
		s.metrics.RecordError("create_person", "insert")
		return nil, fmt.Errorf("creating person: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("resolving new person id: %w", err)
	}

	s.metrics.RecordOperation("create_person", "ok")

	return &types.Person{ID: id, Name: name}, nil
}

// GetPerson returns the person with the given id.
// Returns ErrNotFound if no person exists with that id.
func (s *Store) GetPerson(id int64) (*types.Person, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var p types.Person
	err = db.QueryRow("SELECT id, name FROM person WHERE id = ?", id).
		Scan(&p.ID, &p.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting person %d: %w", id, err)
	}
	return &p, nil
}

// CurrentPersons returns all persons for which no meta row has key "removed"
// and value "true". The filter runs as a single negated-existence query so it
// scales with the person count instead of loading meta rows client-side.
func (s *Store) CurrentPersons() ([]*types.Person, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
SELECT id, name FROM person
WHERE NOT EXISTS (
    SELECT 1 FROM person_meta
    WHERE person_meta.person_id = person.id
      AND person_meta.key = ? AND person_meta.value = 'true'
)
ORDER BY id ASC`, types.MetaRemoved)
	if err != nil {
		return nil, fmt.Errorf("fetching current persons: %w", err)
	}
	defer rows.Close()

	var persons []*types.Person
	for rows.Next() {
		var p types.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		persons = append(persons, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating persons: %w", err)
	}

	return persons, nil
}

// GetMeta returns the value of the first meta row matching key for the
// person, by lowest row id. The second return is false when absent; a miss
// is not an error. Keys are not unique, so the selection is pinned to the
// oldest row rather than store default ordering.
func (s *Store) GetMeta(personID int64, key string) (string, bool, error) {
	db, err := s.conn()
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRow(
		"SELECT value FROM person_meta WHERE person_id = ? AND key = ? ORDER BY id ASC LIMIT 1",
		personID, key,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("getting meta %s for person %d: %w", key, personID, err)
	}
	return value, true, nil
}

// SetMeta appends a meta row for the person. Keys are not unique; callers
// that want a single value should DeleteMeta first.
func (s *Store) SetMeta(personID int64, key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT INTO person_meta (person_id, key, value) VALUES (?, ?, ?)",
		personID, key, value,
	)
	if err != nil {
		return fmt.Errorf("setting meta %s for person %d: %w", key, personID, err)
	}
	return nil
}

// DeleteMeta removes all meta rows matching key for the person.
func (s *Store) DeleteMeta(personID int64, key string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"DELETE FROM person_meta WHERE person_id = ? AND key = ?",
		personID, key,
	)
	if err != nil {
		return fmt.Errorf("deleting meta %s for person %d: %w", key, personID, err)
	}
	return nil
}

// RemovePerson soft-removes a person by setting the removed flag. The person
// and all its versions stay in the store; only default listings exclude it.
// Hard deletion of persons is not supported. The flag swap (clear, then set)
// runs in one transaction so a failure cannot strip an existing flag.
func (s *Store) RemovePerson(personID int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := s.GetPerson(personID); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning removal transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"DELETE FROM person_meta WHERE person_id = ? AND key = ?",
		personID, types.MetaRemoved,
	)
	if err != nil {
		return fmt.Errorf("clearing removed flag for person %d: %w", personID, err)
	}
	_, err = tx.Exec(
		"INSERT INTO person_meta (person_id, key, value) VALUES (?, ?, 'true')",
		personID, types.MetaRemoved,
	)
	if err != nil {
		return fmt.Errorf("setting removed flag for person %d: %w", personID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing removal for person %d: %w", personID, err)
	}

	s.log.Info().Int64("person_id", personID).Msg("person removed")

	return nil
}

// GetPersons returns the full-directory projection: for every person,
// soft-removed ones included, the current content document merged with the
// person's name under the "name" key, keyed by person id.
func (s *Store) GetPersons() (map[int64]types.Document, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name FROM person ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("fetching persons: %w", err)
	}
	defer rows.Close()

	var persons []*types.Person
	for rows.Next() {
		var p types.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		persons = append(persons, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating persons: %w", err)
	}
	rows.Close()

	out := make(map[int64]types.Document, len(persons))
	for _, p := range persons {
		doc, err := s.GetContent(p.ID)
		if err != nil {
			return nil, err
		}
		doc["name"] = []string{p.Name}
		out[p.ID] = doc
	}
	return out, nil
}
