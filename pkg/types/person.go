package types

// Person is a directory entry. Its identity (id, name) is immutable after
// creation in the common path; profile data lives in content versions and
// administrative flags in person_meta rows.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PersonMeta is an administrative (key, value) flag attached to a person.
// Several rows per person are allowed and keys are not unique; lookups return
// the first match.
type PersonMeta struct {
	ID       int64  `json:"id"`
	PersonID int64  `json:"person_id"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

// MetaRemoved marks a person as soft-removed when its value is "true".
// Soft-removed persons are excluded from CurrentPersons but keep all
// underlying data.
const MetaRemoved = "removed"

// Known meta keys beyond MetaRemoved.
const (
	MetaOffice  = "office"
	MetaCollege = "college"
	MetaHpolID  = "hpol_id"
)
