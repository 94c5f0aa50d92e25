// Package cli — run.go implements the "runway run" command.
//
// run executes one program with wildcard-expanded arguments and
// captured output. By default the capture is discarded on success and
// shown as diagnostics on failure; --capture prints both streams
// regardless of outcome.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/shellword"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	// capture switches to two-stream capture (iorun behavior): stdout
	// and stderr are captured separately and both are printed.
	capture bool
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <program> [arg...]",
		Short: "Run a program with expanded arguments and captured output",
		Long: `Run a program with wildcard-expanded arguments.

Output is captured to temporary files that are always cleaned up. On
success the capture is discarded; on failure the diagnostic text is
printed. With --capture both streams are printed on every outcome.

A single argument containing whitespace is tokenized as a full command
string, so a quoted command works too:

  runway run gcc -o app '*.c'
  runway run 'gcc -o app main.c'
  runway run --capture 'git status'`,

		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.capture, "capture", false,
		"Capture and print stdout and stderr separately")

	// Flags after the program name belong to the program, not to us.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// runRun is the main logic function for the run command.
func runRun(cmd *cobra.Command, args []string, flags *runFlags) error {
	argv, err := commandVector(args)
	if err != nil {
		return err
	}

	e := newExecutor()
	ctx := cmd.Context()

	if flags.capture {
		ok, stdout, stderr := e.IORun(ctx, argv[0], argv[1:]...)
		if IsJSONOutput() {
			return printRunReport(cmd, model.RunReport{Command: argv, OK: ok, Stdout: stdout, Stderr: stderr})
		}
		if stdout != "" {
			fmt.Fprint(cmd.OutOrStdout(), stdout)
		}
		if stderr != "" {
			fmt.Fprint(cmd.ErrOrStderr(), stderr)
		}
		if !ok {
			return model.NewCLIError(model.ExitGeneralError, commandFailedMessage(argv, stderr))
		}
		return nil
	}

	ok, errText := e.Run(ctx, argv[0], argv[1:]...)
	if IsJSONOutput() {
		if err := printRunReport(cmd, model.RunReport{Command: argv, OK: ok, Stderr: errText}); err != nil {
			return err
		}
	}
	if !ok {
		return model.NewCLIError(model.ExitGeneralError, commandFailedMessage(argv, errText))
	}
	return nil
}

// commandVector turns the command arguments into an argument vector:
// a single whitespace-bearing argument is tokenized as a command
// string, anything else is taken as program-plus-args verbatim.
func commandVector(args []string) ([]string, error) {
	if len(args) == 1 && strings.ContainsAny(args[0], " \t") {
		argv, err := shellword.Split(args[0])
		if err != nil {
			return nil, model.WrapCLIError(model.ExitBadInput, "tokenizing command", err)
		}
		if len(argv) == 0 {
			return nil, model.NewCLIError(model.ExitBadInput, "empty command")
		}
		return argv, nil
	}
	return args, nil
}

// commandFailedMessage builds the failure message for a run outcome,
// preferring the captured diagnostic text when there is any.
func commandFailedMessage(argv []string, diagnostic string) string {
	if d := strings.TrimSpace(diagnostic); d != "" {
		return fmt.Sprintf("%s failed: %s", argv[0], d)
	}
	return fmt.Sprintf("%s failed (no diagnostic output; it may not have started)", argv[0])
}

// printRunReport writes a RunReport as indented JSON to the command's
// stdout.
func printRunReport(cmd *cobra.Command, report model.RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
