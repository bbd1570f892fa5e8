// Package sqlite implements the SQLite storage backend for the agenda
// persistence layer. See docs/ARCHITECTURE.md § SQLite Backend.
package sqlite

// Schema DDL for all tables. Timestamps are RFC3339 TEXT in UTC; documents
// are JSON-encoded BLOBs.
const (
	createUser = `CREATE TABLE IF NOT EXISTS user (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    openid_url TEXT NOT NULL UNIQUE,
    name TEXT,
    email TEXT,
    time_create TEXT
);`

	createPerson = `CREATE TABLE IF NOT EXISTS person (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	createPersonMeta = `CREATE TABLE IF NOT EXISTS person_meta (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_id INTEGER NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    FOREIGN KEY (person_id) REFERENCES person(id)
);`

	createContentVersion = `CREATE TABLE IF NOT EXISTS content_version (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_id INTEGER NOT NULL,
    user_id INTEGER,
    time TEXT NOT NULL,
    content BLOB NOT NULL,
    FOREIGN KEY (person_id) REFERENCES person(id),
    FOREIGN KEY (user_id) REFERENCES user(id)
);`

	// person_property is the deprecated flat key/value table. It is only
	// read and emptied by the legacy-property migration.
	createPersonProperty = `CREATE TABLE IF NOT EXISTS person_property (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_id INTEGER NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    FOREIGN KEY (person_id) REFERENCES person(id)
);`

	createAttributeDef = `CREATE TABLE IF NOT EXISTS attribute_def (
    key TEXT PRIMARY KEY,
    label TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxPersonMetaKey     = `CREATE INDEX IF NOT EXISTS idx_person_meta_key ON person_meta(person_id, key);`
	idxContentVersion    = `CREATE INDEX IF NOT EXISTS idx_content_version_person_time ON content_version(person_id, time);`
	idxPersonName        = `CREATE INDEX IF NOT EXISTS idx_person_name ON person(name);`
	idxPersonPropertyRef = `CREATE INDEX IF NOT EXISTS idx_person_property_person ON person_property(person_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUser,
	createPerson,
	createPersonMeta,
	createContentVersion,
	createPersonProperty,
	createAttributeDef,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxPersonMetaKey,
	idxContentVersion,
	idxPersonName,
	idxPersonPropertyRef,
}

// dropDDL lists DROP TABLE statements in reverse dependency order, used by
// the destructive fixture import.
var dropDDL = []string{
	`DROP TABLE IF EXISTS attribute_def;`,
	`DROP TABLE IF EXISTS person_property;`,
	`DROP TABLE IF EXISTS content_version;`,
	`DROP TABLE IF EXISTS person_meta;`,
	`DROP TABLE IF EXISTS person;`,
	`DROP TABLE IF EXISTS user;`,
}
