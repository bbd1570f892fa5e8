// Roster command: merge an external roster file into the directory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Romargo/agenda-politicieni/internal/sqlite"
)

var rosterCmd = &cobra.Command{
	Use:   "roster <file>",
	Short: "Import a roster file, merging entries by exact name match",
	Long: `Import a roster file: a JSON array of objects with "name" and "emails".
Entries matching exactly one existing person reuse it; unmatched entries
create new persons. A name matching more than one person aborts the import
with nothing committed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore(newRunLogger())
		if err != nil {
			return err
		}
		defer store.Detach()

		entries, err := sqlite.LoadRoster(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", errBadInput, err)
		}

		created, reused, err := store.ImportRoster(entries)
		if err != nil {
			return err
		}

		fmt.Printf("Roster imported: %d created, %d reused\n", created, reused)
		return nil
	},
}
