// Package cli — expand.go implements the "runway expand" command.
//
// The expand command applies wildcard expansion to an argument list the
// same way run/exec/par do before spawning, and prints the resulting
// vector. It exists mainly to inspect what a program would receive.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/fsops"
)

// NewExpandCommand creates the "expand" cobra command.
func NewExpandCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand [arg...]",
		Short: "Expand wildcard arguments into concrete paths",
		Long: `Expand each argument that matches one or more filesystem entries into
those entries, in place. Arguments that match nothing pass through
verbatim, so literal flags and names survive unchanged.

Examples:
  runway expand cc -o app '*.c'
  runway expand --json '**.go'`,

		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expanded := fsops.ExpandArgs(args)

			if IsJSONOutput() {
				data, err := json.MarshalIndent(map[string][]string{"args": expanded}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			for _, a := range expanded {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}

	// Flags after the first positional belong to the expanded command
	// line, not to us.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
