// Shared helpers for agenda CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Romargo/agenda-politicieni/internal/sqlite"
	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// newLogger builds the CLI logger. Store events go to stderr only when
// --verbose is set.
func newLogger() zerolog.Logger {
	if !flagVerbose {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).With().Timestamp().Logger()
}

// newRunLogger builds a logger for batch commands with a per-run id, so the
// lines of one import or migration run can be grouped afterwards.
func newRunLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// attachStore resolves the data directory, creates a SQLite store with the
// given logger, and attaches it. The caller must defer store.Detach().
func attachStore(log zerolog.Logger) (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore(sqlite.WithLogger(log))
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}
