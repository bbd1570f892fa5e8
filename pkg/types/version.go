package types

import "time"

// ContentVersion is an immutable, timestamped snapshot of a person's
// document. Versions are append-only: once written they are never mutated.
// The version with the highest (time, id) pair is the person's current
// content.
type ContentVersion struct {
	ID       int64     `json:"id"`
	PersonID int64     `json:"person_id"`
	UserID   *int64    `json:"user_id,omitempty"`
	Time     time.Time `json:"time"`
	Content  Document  `json:"content"`
}
