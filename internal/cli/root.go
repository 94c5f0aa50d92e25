// Package cli implements the cobra-based commands of the runway tool.
//
// Each subcommand (glob, expand, run, exec, par) lives in its own file.
// This file defines the root command, the global flags, configuration
// and logger setup, and the error-to-exit-code translation.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/config"
	"github.com/mmr-tortoise/runway/internal/logging"
	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/proc"
	"github.com/mmr-tortoise/runway/internal/workdir"
)

// Global flag variables shared across all subcommands, bound to cobra
// persistent flags on the root command.
var (
	// jsonOutput switches command output to structured JSON.
	jsonOutput bool

	// verbose enables debug-level logging on stderr.
	verbose bool

	// configPath points at an explicit configuration file. When empty,
	// the current directory is probed for a runway.* file.
	configPath string
)

// cfg and logger are initialized by the root command's PersistentPreRunE
// and consumed by the subcommands.
var (
	cfg    = config.Default()
	logger = zerolog.Nop()
)

// Version, Commit, and Date are set at build time via ldflags,
// injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command with all
// subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runway",
		Short: "Wildcard expansion and process running for build scripts",
		Long: `runway resolves wildcard file specifications into concrete path lists
and runs external programs on top of them.

Patterns use * (within one path segment), ** (across segments), and an
optional |excl1|excl2 exclusion suffix. Programs started by run, exec,
and par get their wildcard arguments expanded first; par interleaves
several commands on a cooperative scheduler.`,

		// Errors are formatted by Execute (text or JSON), so cobra's own
		// printing is silenced.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a runway config file")

	rootCmd.AddCommand(NewGlobCommand())
	rootCmd.AddCommand(NewExpandCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewExecCommand())
	rootCmd.AddCommand(NewParCommand())

	return rootCmd
}

// setup loads the project configuration and builds the shared logger.
// An explicit --config path that fails to load is an error; a missing
// implicit file just means defaults.
func setup() error {
	path := configPath
	if path == "" {
		var found bool
		if path, found = config.Locate("."); !found {
			path = ""
		}
	}

	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError, "loading configuration", err)
		}
		cfg = loaded
	}

	var err error
	logger, err = logging.Setup(cfg.LogLevel, verbose, cfg.LogFile)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "setting up logging", err)
	}
	return nil
}

// newExecutor builds the process executor the program-spawning commands
// share: process-wide working directory, config environment overlay,
// and the CLI logger.
func newExecutor() *proc.Executor {
	return &proc.Executor{
		WD:  workdir.Default,
		Env: cfg.Environ(),
		Log: logger,
	}
}

// Execute runs the root command and translates errors into process exit
// codes. CLIError values carry their own code; anything else exits 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error in the format selected by --json. Errors
// go to stderr in both modes; stdout is reserved for command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]any{"error": map[string]any{"message": message}}
		if underlying != nil {
			errObj["error"].(map[string]any)["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
