package types

import "errors"

// Directory defines backend-agnostic access to the contact directory store.
// Callers attach to a backend, operate on users, persons, and content
// versions, and detach when done. All operations are synchronous and run to
// completion inside one backend transaction before returning; there is no
// application-level locking or retry.
type Directory interface {
	// Attach connects the Directory to the backend described by config.
	// Creates the DataDir if it does not exist and initializes the schema.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	// GetUser returns the user with the given identity URL, or (nil, nil)
	// when no such user exists. A miss is not an error.
	GetUser(openidURL string) (*User, error)

	// GetOrUpdateUser resolves the user for an identity assertion. A missing
	// user is created with TimeCreate set to the current UTC time. When the
	// stored (name, email) differ from the supplied values they are
	// overwritten and persisted immediately. The resulting user is returned
	// either way.
	GetOrUpdateUser(openidURL, name, email string) (*User, error)

	// CreatePerson creates a person with a generated id.
	CreatePerson(name string) (*Person, error)

	// GetPerson returns the person with the given id.
	// Returns ErrNotFound if no person exists with that id.
	GetPerson(id int64) (*Person, error)

	// CurrentPersons returns all persons not marked removed, using a single
	// negated-existence query against person_meta.
	CurrentPersons() ([]*Person, error)

	// GetMeta returns the value of the first meta row matching key for the
	// person, by lowest row id. The second return is false when absent.
	GetMeta(personID int64, key string) (string, bool, error)

	// SetMeta appends a meta row for the person. Keys are not unique.
	SetMeta(personID int64, key, value string) error

	// DeleteMeta removes all meta rows matching key for the person.
	DeleteMeta(personID int64, key string) error

	// RemovePerson soft-removes a person by setting the removed flag. Hard
	// deletion of persons is not supported.
	RemovePerson(personID int64) error

	// GetContent returns the document of the person's most recent version
	// (time descending, id descending), or an empty document if the person
	// has no versions.
	GetContent(personID int64) (Document, error)

	// SaveContentVersion appends a new version with the current UTC time and
	// the supplied document and author. Prior versions are untouched and
	// never compacted. The author may be nil.
	SaveContentVersion(personID int64, doc Document, userID *int64) (*ContentVersion, error)

	// Versions returns all versions for the person, newest first.
	Versions(personID int64) ([]*ContentVersion, error)

	// GetVersion returns a version by id.
	// Returns ErrNotFound if no version exists with that id.
	GetVersion(id int64) (*ContentVersion, error)

	// GetPersons returns the full-directory projection: for every person,
	// soft-removed ones included, the current document merged with the
	// person's name under the "name" key, keyed by person id.
	GetPersons() (map[int64]Document, error)

	// AttributeDefs returns the attribute definitions ordered by key.
	AttributeDefs() ([]AttributeDef, error)

	// MigrateLegacyProperties groups deprecated person_property rows by key
	// into one document per person (values in original row order), deletes
	// the legacy rows, and writes one new version per person. A single
	// commit covers the whole batch. Returns the number of persons migrated.
	MigrateLegacyProperties() (int, error)

	// ImportFixture destructively resets the store (drop and recreate
	// schema), then creates one person per record with its explicit id and
	// one version where every attribute becomes a single-valued list.
	ImportFixture(records []FixtureRecord) error

	// ImportRoster merges roster entries by exact name match: one match
	// reuses the person, none creates one, more than one fails with
	// ErrAmbiguousName and nothing is committed. Entries carrying emails get
	// a new version holding just the email list. A single commit covers the
	// whole batch. Returns the number of persons created and reused.
	ImportRoster(entries []RosterEntry) (created, reused int, err error)
}

// Directory lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity id")
	ErrAmbiguousName = errors.New("name matches more than one person")
)
