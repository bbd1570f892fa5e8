package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/Romargo/agenda-politicieni/internal/metrics"
	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "agenda.db"

var _ types.Directory = (*Store)(nil)

// Store implements the Directory interface using SQLite. The handle is
// explicit: callers construct a Store, attach it, and pass it to whatever
// needs directory access. There is no process-global session.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	log     zerolog.Logger
	metrics metrics.Collector
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger sets the store logger. The default discards all events.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithMetrics sets the metrics collector. The default is a no-op collector.
func WithMetrics(c metrics.Collector) Option {
	return func(s *Store) { s.metrics = c }
}

// NewStore creates a new SQLite store instance.
// The store is not attached; call Attach with a Config to initialize.
func NewStore(opts ...Option) *Store {
	s := &Store{
		log:     zerolog.Nop(),
		metrics: metrics.NewNoopCollector(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach initializes the store with the given configuration. Creates DataDir
// if it does not exist, opens the database file, initializes the schema, and
// seeds the built-in attribute definitions.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	if err := seedAttributeDefs(db); err != nil {
		db.Close()
		return fmt.Errorf("seeding attribute definitions: %w", err)
	}

	s.db = db
	s.config = config
	s.attached = true

	s.log.Debug().Str("db", dbPath).Msg("store attached")

	return nil
}

// Detach releases all resources held by the store. After Detach, all
// operations return ErrStoreDetached. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false

	return nil
}

// conn returns the database handle, or ErrStoreDetached when the store is
// not attached. Callers must hold no lock; conn takes the read lock.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.db, nil
}

// initSchema executes the table and index DDL. All statements use
// IF NOT EXISTS, so initialization is idempotent across attaches.
func initSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}

// resetSchema drops every table and recreates the schema from scratch.
// Used by the destructive fixture import.
func resetSchema(db *sql.DB) error {
	for _, ddl := range dropDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("dropping table: %w", err)
		}
	}
	if err := initSchema(db); err != nil {
		return err
	}
	return seedAttributeDefs(db)
}
