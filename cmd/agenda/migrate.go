// Migrate command: one-off legacy property migration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate deprecated person_property rows into content versions",
	Long: `Group deprecated flat person_property rows by key into one document per
person, delete the legacy rows, and write one new content version per
person. The batch commits once at the end; run it without concurrent
traffic and re-run from scratch if interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore(newRunLogger())
		if err != nil {
			return err
		}
		defer store.Detach()

		migrated, err := store.MigrateLegacyProperties()
		if err != nil {
			return err
		}

		fmt.Printf("Migrated legacy properties for %d persons\n", migrated)
		return nil
	},
}
