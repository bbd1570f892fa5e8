// Export command: dump the full-directory projection as JSON.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current document of every person to stdout as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore(newLogger())
		if err != nil {
			return err
		}
		defer store.Detach()

		persons, err := store.GetPersons()
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(persons, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
