// Package sqlite provides the public API for the SQLite directory backend.
// It exposes the factory function for creating SQLite stores while keeping
// implementation details internal.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".agenda-db",
//	})
//	defer store.Detach()
package sqlite

import (
	"github.com/Romargo/agenda-politicieni/internal/sqlite"
	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// NewStore creates a new SQLite store instance.
// The store is not attached; call Attach with a Config to initialize.
func NewStore() types.Directory {
	return sqlite.NewStore()
}
