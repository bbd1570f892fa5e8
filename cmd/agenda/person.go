// Person commands: list current persons, soft-remove a person.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Inspect and administer persons",
}

var personListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all current (not soft-removed) persons",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore(newLogger())
		if err != nil {
			return err
		}
		defer store.Detach()

		persons, err := store.CurrentPersons()
		if err != nil {
			return err
		}

		if flagJSON {
			out, err := json.MarshalIndent(persons, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		for _, p := range persons {
			fmt.Printf("%d\t%s\n", p.ID, p.Name)
		}
		return nil
	},
}

var personRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Soft-remove a person (sets the removed flag, keeps all data)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("person id %q: %w", args[0], types.ErrInvalidID)
		}

		store, err := attachStore(newLogger())
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.RemovePerson(id); err != nil {
			return err
		}

		fmt.Printf("Person %d removed\n", id)
		return nil
	},
}

func init() {
	personCmd.AddCommand(personListCmd)
	personCmd.AddCommand(personRemoveCmd)
}
