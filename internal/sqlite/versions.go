// This file implements content versioning and the current-content
// projection. Versions are append-only snapshots; the projection pushes the
// most-recent selection into the query layer because person history grows
// without bound.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// GetContent returns the decoded document of the person's most recent
// version, or an empty document if none exists. Ordering is time descending
// with id descending as the tie-break, so two versions written within the
// same clock second still resolve deterministically to the later insert.
func (s *Store) GetContent(personID int64) (types.Document, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var content []byte
	err = db.QueryRow(
		"SELECT content FROM content_version WHERE person_id = ? ORDER BY time DESC, id DESC LIMIT 1",
		personID,
	).Scan(&content)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Document{}, nil
		}
		return nil, fmt.Errorf("getting content for person %d: %w", personID, err)
	}

	return decodeDocument(content)
}

// SaveContentVersion appends a new version with the current UTC time, the
// supplied document, and the given author (nil for unattributed writes).
// Prior versions are untouched; history is never compacted or pruned. The
// write commits immediately in its own implicit transaction.
func (s *Store) SaveContentVersion(personID int64, doc types.Document, userID *int64) (*types.ContentVersion, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	content, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}

	// RFC3339 storage keeps second precision; truncate so the returned
	// version matches what a later read hydrates.
	now := time.Now().UTC().Truncate(time.Second)
	res, err := db.Exec(
		"INSERT INTO content_version (person_id, user_id, time, content) VALUES (?, ?, ?, ?)",
		personID, userID, now.Format(time.RFC3339), content,
	)
	if err != nil {
		s.metrics.RecordError("save_content_version", "insert")
		return nil, fmt.Errorf("saving content version for person %d: %w", personID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("resolving new version id: %w", err)
	}

	s.log.Info().
		Int64("person_id", personID).
		Int64("version_id", id).
		Msg("content update")
	s.metrics.RecordOperation("save_content_version", "ok")

	return &types.ContentVersion{
		ID:       id,
		PersonID: personID,
		UserID:   userID,
		Time:     now,
		Content:  doc.Clone(),
	}, nil
}

// Versions returns all versions for the person, newest first.
func (s *Store) Versions(personID int64) ([]*types.ContentVersion, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, person_id, user_id, time, content FROM content_version WHERE person_id = ? ORDER BY time DESC, id DESC",
		personID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching versions for person %d: %w", personID, err)
	}
	defer rows.Close()

	var versions []*types.ContentVersion
	for rows.Next() {
		v, err := hydrateVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating version: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating versions: %w", err)
	}

	return versions, nil
}

// GetVersion returns a version by id.
// Returns ErrNotFound if no version exists with that id.
func (s *Store) GetVersion(id int64) (*types.ContentVersion, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var v types.ContentVersion
	var userID sql.NullInt64
	var timeStr string
	var content []byte
	err = db.QueryRow(
		"SELECT id, person_id, user_id, time, content FROM content_version WHERE id = ?",
		id,
	).Scan(&v.ID, &v.PersonID, &userID, &timeStr, &content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting version %d: %w", id, err)
	}

	return finishVersion(&v, userID, timeStr, content)
}

// hydrateVersion converts a row from sql.Rows into a *types.ContentVersion.
func hydrateVersion(rows *sql.Rows) (*types.ContentVersion, error) {
	var v types.ContentVersion
	var userID sql.NullInt64
	var timeStr string
	var content []byte
	if err := rows.Scan(&v.ID, &v.PersonID, &userID, &timeStr, &content); err != nil {
		return nil, err
	}
	return finishVersion(&v, userID, timeStr, content)
}

// finishVersion fills the nullable and encoded columns of a scanned version.
func finishVersion(v *types.ContentVersion, userID sql.NullInt64, timeStr string, content []byte) (*types.ContentVersion, error) {
	if userID.Valid {
		uid := userID.Int64
		v.UserID = &uid
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		return nil, fmt.Errorf("parsing version time: %w", err)
	}
	v.Time = t

	doc, err := decodeDocument(content)
	if err != nil {
		return nil, err
	}
	v.Content = doc

	return v, nil
}

// encodeDocument serializes a document as a UTF-8 JSON object. A nil
// document encodes as {}.
func encodeDocument(doc types.Document) ([]byte, error) {
	if doc == nil {
		doc = types.Document{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// decodeDocument parses a stored content blob back into a document.
func decodeDocument(content []byte) (types.Document, error) {
	doc := types.Document{}
	if len(content) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}
