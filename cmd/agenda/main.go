// Package main provides the agenda CLI, fronting the batch import and
// migration routines of the directory store.
// See docs/ARCHITECTURE.md § CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

// errBadInput marks failures caused by what the user supplied (malformed
// files, bad arguments), so main picks the user exit code over the system one.
var errBadInput = errors.New("invalid input")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errBadInput),
		errors.Is(err, types.ErrAmbiguousName),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID):
		return exitUserError
	}
	return exitSysError
}
