// Package cli — par.go implements the "runway par" command.
//
// par runs several commands as cooperative tasks on one scheduler. Each
// task spawns its program, then polls and yields while it runs, so all
// the processes execute concurrently while the tool itself stays
// single-threaded. Output is captured per command and printed once
// everything has finished, in the order the commands were given.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/sched"
	"github.com/mmr-tortoise/runway/internal/shellword"
)

// NewParCommand creates the "par" cobra command.
func NewParCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "par <command>...",
		Short: "Run several commands concurrently on a cooperative scheduler",
		Long: `Run each command string as a cooperative task. The processes run
concurrently; their captured outputs are printed per command after all
of them finish, first-given first.

Examples:
  runway par 'go build ./...' 'go vet ./...'
  runway par 'make docs' 'make lint' --json`,

		Args: cobra.MinimumNArgs(1),
		RunE: runPar,
	}
}

// runPar is the main logic function for the par command.
func runPar(cmd *cobra.Command, args []string) error {
	reports := make([]model.RunReport, len(args))

	e := newExecutor()
	s := sched.New()
	for i, command := range args {
		argv, err := shellword.Split(command)
		if err != nil {
			return model.WrapCLIError(model.ExitBadInput, "tokenizing command", err)
		}
		if len(argv) == 0 {
			return model.NewCLIError(model.ExitBadInput, fmt.Sprintf("command %d is empty", i+1))
		}

		s.Go(fmt.Sprintf("cmd-%d", i+1), func(ctx context.Context) error {
			ok, stdout, stderr := e.IORun(ctx, argv[0], argv[1:]...)
			reports[i] = model.RunReport{Command: argv, OK: ok, Stdout: stdout, Stderr: stderr}
			return nil
		})
	}

	if err := s.Run(cmd.Context()); err != nil {
		return err
	}

	if IsJSONOutput() {
		data, err := json.MarshalIndent(map[string][]model.RunReport{"commands": reports}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, r := range reports {
			if r.Stdout != "" {
				fmt.Fprint(cmd.OutOrStdout(), r.Stdout)
			}
			if r.Stderr != "" {
				fmt.Fprint(cmd.ErrOrStderr(), r.Stderr)
			}
		}
	}

	failed := 0
	for _, r := range reports {
		if !r.OK {
			failed++
		}
	}
	if failed > 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("%d of %d commands failed", failed, len(reports)))
	}
	return nil
}
