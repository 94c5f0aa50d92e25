// Package model defines the shared value types of the runway CLI:
// exit codes, the CLIError type that carries them, and the JSON report
// shapes the commands emit under --json.
//
// The package contains pure data structures with no dependencies on the
// rest of the tool.
package model
