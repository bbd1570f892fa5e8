// User command: exercise the identity lookup-or-update path.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	userSyncName  string
	userSyncEmail string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Administer authenticated users",
}

var userSyncCmd = &cobra.Command{
	Use:   "sync <openid-url>",
	Short: "Create or update the user for an identity URL",
	Long: `Resolve the user for an identity URL the same way a login does: a missing
user is created, and stored name/email are overwritten when they differ
from the supplied values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore(newLogger())
		if err != nil {
			return err
		}
		defer store.Detach()

		user, err := store.GetOrUpdateUser(args[0], userSyncName, userSyncEmail)
		if err != nil {
			return err
		}

		if flagJSON {
			out, err := json.MarshalIndent(user, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("User %d: %s <%s>\n", user.ID, user.Name, user.Email)
		return nil
	},
}

func init() {
	userSyncCmd.Flags().StringVar(&userSyncName, "name", "", "display name")
	userSyncCmd.Flags().StringVar(&userSyncEmail, "email", "", "email address")

	userCmd.AddCommand(userSyncCmd)
}
