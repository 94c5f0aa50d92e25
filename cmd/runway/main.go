// Package main is the entry point for the runway CLI.
//
// runway resolves wildcard file specifications for build scripts and
// runs external programs over the expanded results, including several
// at once on a cooperative scheduler. All functionality lives in the
// internal/cli package, which defines the cobra commands.
package main

import (
	"github.com/mmr-tortoise/runway/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// During development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
