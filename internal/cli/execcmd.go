// Package cli — execcmd.go implements the "runway exec" command.
//
// exec is the raw passthrough: the program inherits the CLI's stdout
// and stderr, nothing is captured, and the CLI's own exit status is the
// program's exit status. A control-layer failure (could not start, wait
// produced no status) maps to the spawn-failure exit code.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/fsops"
	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/proc"
)

// NewExecCommand creates the "exec" cobra command.
func NewExecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <program> [arg...]",
		Short: "Run a program with passthrough output and exit status",
		Long: `Run a program with wildcard-expanded arguments, streaming its output
directly and exiting with the program's own exit code.

Examples:
  runway exec make all
  runway exec cc -c '*.c'`,

		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := fsops.LookProgram(args[0])
			if err != nil {
				return model.WrapCLIError(model.ExitSpawnFailure, "resolving program", err)
			}

			e := newExecutor()
			code := e.Exec(cmd.Context(), program, args[1:], os.Stdout, os.Stderr)
			if code == proc.OutcomeFailed {
				return model.NewCLIError(model.ExitSpawnFailure,
					fmt.Sprintf("%s could not be started or waited on", args[0]))
			}
			if code != 0 {
				return model.NewCLIError(model.ExitCode(code),
					fmt.Sprintf("%s exited with status %d", args[0], code))
			}
			return nil
		},
	}

	// Flags after the program name belong to the program, not to us.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
