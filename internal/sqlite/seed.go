// This file implements built-in attribute definition seeding on store attach.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// seedAttributeDefs inserts the built-in attribute definitions if the
// attribute_def table is empty (first run). Seeding is idempotent.
func seedAttributeDefs(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM attribute_def").Scan(&count); err != nil {
		return fmt.Errorf("counting attribute definitions: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, def := range types.BuiltInAttributes {
		_, err := tx.Exec(
			"INSERT INTO attribute_def (key, label) VALUES (?, ?)",
			def.Key, def.Label,
		)
		if err != nil {
			return fmt.Errorf("seeding attribute %s: %w", def.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	return nil
}

// AttributeDefs returns the attribute definitions ordered by key.
func (s *Store) AttributeDefs() ([]types.AttributeDef, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT key, label FROM attribute_def ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("fetching attribute definitions: %w", err)
	}
	defer rows.Close()

	var defs []types.AttributeDef
	for rows.Next() {
		var def types.AttributeDef
		if err := rows.Scan(&def.Key, &def.Label); err != nil {
			return nil, fmt.Errorf("scanning attribute definition: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attribute definitions: %w", err)
	}

	return defs, nil
}
