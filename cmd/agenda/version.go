package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Romargo/agenda-politicieni/pkg/agenda"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("agenda", agenda.Version)
	},
}
