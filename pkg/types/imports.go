package types

// FixtureRecord is one entry of a fixture file: a person with an explicit id
// and single-valued attributes. Fixture import is destructive; see
// Directory.ImportFixture.
type FixtureRecord struct {
	ID         int64
	Name       string
	Attributes map[string]string
}

// RosterEntry is one entry of an external roster file. Entries are merged
// into the directory by exact name match.
type RosterEntry struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
}
