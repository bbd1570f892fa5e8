// Init command: initialize the store, optionally from a fixture file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Romargo/agenda-politicieni/internal/sqlite"
)

var initFixture string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the agenda store, optionally importing a fixture file",
	Long: `Initialize the agenda store in the data directory.

With --fixture, the store is RESET (all existing data dropped) and
repopulated from the fixture file: a JSON array of objects with at least
"id" and "name"; all other keys become single-valued attributes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore(newRunLogger())
		if err != nil {
			return err
		}
		defer store.Detach()

		if initFixture == "" {
			fmt.Println("Store initialized")
			return nil
		}

		records, err := sqlite.LoadFixture(initFixture)
		if err != nil {
			return fmt.Errorf("%w: %w", errBadInput, err)
		}

		if err := store.ImportFixture(records); err != nil {
			return err
		}

		fmt.Printf("Imported %d persons from %s\n", len(records), initFixture)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initFixture, "fixture", "", "fixture file to import (destructive)")
}
