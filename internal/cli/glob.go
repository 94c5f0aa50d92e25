// Package cli — glob.go implements the "runway glob" command.
//
// The glob command resolves one wildcard pattern into the ordered list
// of matching paths. The match mode defaults to the configuration's
// mode token and can be overridden per invocation with --mode.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/runway/internal/fsops"
	"github.com/mmr-tortoise/runway/internal/model"
	"github.com/mmr-tortoise/runway/internal/wildcard"
)

// globFlags holds the flag values for the glob command.
type globFlags struct {
	// mode is the match-mode token: "a", "f", or "d".
	mode string
}

// NewGlobCommand creates the "glob" cobra command.
func NewGlobCommand() *cobra.Command {
	flags := &globFlags{}

	cmd := &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Resolve a wildcard pattern into matching paths",
		Long: `Resolve a wildcard pattern into the ordered list of matching paths.

Patterns use * for any characters within one path segment and ** for
any characters across segments. A |excl1|excl2 suffix excludes paths.

Examples:
  runway glob 'src/*.c'
  runway glob '**.go|**_test.go' --mode f
  runway glob 'build/*' --mode d --json`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := cfg.Mode
			if cmd.Flags().Changed("mode") {
				token = flags.mode
			}
			return runGlob(cmd, args[0], token)
		},
	}

	cmd.Flags().StringVar(&flags.mode, "mode", "f",
		"Match mode: a (any), f (files), d (directories)")

	return cmd
}

// runGlob is the main logic function for the glob command.
func runGlob(cmd *cobra.Command, pattern, modeToken string) error {
	mode, err := wildcard.ParseMode(modeToken)
	if err != nil {
		return model.WrapCLIError(model.ExitBadInput, "invalid --mode", err)
	}

	spec := withConfigExcludes(pattern)
	matches, err := fsops.Glob(spec, mode)
	if err != nil {
		return model.WrapCLIError(model.ExitBadInput, fmt.Sprintf("pattern %q", pattern), err)
	}

	logger.Debug().Str("pattern", spec).Str("mode", mode.String()).
		Int("count", len(matches)).Msg("glob resolved")

	if IsJSONOutput() {
		report := model.GlobReport{
			Pattern: pattern,
			Mode:    mode.String(),
			Count:   len(matches),
			Matches: matches,
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	for _, m := range matches {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return nil
}

// withConfigExcludes appends the configuration's global exclude
// patterns to a spec as additional "|" sections.
func withConfigExcludes(spec string) string {
	if len(cfg.Excludes) == 0 {
		return spec
	}
	return spec + "|" + strings.Join(cfg.Excludes, "|")
}
