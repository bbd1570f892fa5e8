package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Romargo/agenda-politicieni/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "ambiguous roster name is a user error",
			err:  fmt.Errorf("roster entry %q matches 2 persons: %w", "Ion Ionescu", types.ErrAmbiguousName),
			want: exitUserError,
		},
		{
			name: "malformed input file is a user error",
			err:  fmt.Errorf("%w: parsing roster JSON", errBadInput),
			want: exitUserError,
		},
		{
			name: "missing entity is a user error",
			err:  types.ErrNotFound,
			want: exitUserError,
		},
		{
			name: "invalid id is a user error",
			err:  fmt.Errorf("person id %q: %w", "abc", types.ErrInvalidID),
			want: exitUserError,
		},
		{
			name: "store failure is a system error",
			err:  fmt.Errorf("attach store: disk full"),
			want: exitSysError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

// Commands report failures by returning an error so deferred cleanup (store
// detach) still runs; none of them exit the process themselves.
func TestPersonRemoveRejectsBadID(t *testing.T) {
	err := personRemoveCmd.RunE(personRemoveCmd, []string{"abc"})
	assert.ErrorIs(t, err, types.ErrInvalidID)
}
