package model

import "fmt"

// ExitCode defines the CLI's own exit codes. Commands that hand a
// spawned program's exit status through (exec) use the program's code
// directly; these constants cover the control layer's outcomes.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitBadInput indicates an invalid pattern, mode token, or command
	// string.
	ExitBadInput ExitCode = 2

	// ExitSpawnFailure indicates a program could not be started or its
	// wait produced no usable status (the -1 exit outcome).
	ExitSpawnFailure ExitCode = 3

	// ExitConfigError indicates the project configuration file could not
	// be read or parsed.
	ExitConfigError ExitCode = 4
)

// CLIError is an error that carries an exit code, letting the CLI layer
// translate failures into process exit statuses.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface, including the underlying error
// when one is present.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError wrapping an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// GlobReport is the JSON shape of a glob command result.
type GlobReport struct {
	// Pattern is the original wildcard spec as given on the command line.
	Pattern string `json:"pattern"`

	// Mode is the match-mode token the query ran with.
	Mode string `json:"mode"`

	// Count is the number of matches.
	Count int `json:"count"`

	// Matches is the ordered match list.
	Matches []string `json:"matches"`
}

// RunReport is the JSON shape of a run/par command result.
type RunReport struct {
	// Command is the tokenized argument vector that was executed.
	Command []string `json:"command"`

	// OK is true iff the program started, was waited on, and exited
	// with status zero.
	OK bool `json:"ok"`

	// Stdout is the captured standard output, when the command captured
	// it.
	Stdout string `json:"stdout,omitempty"`

	// Stderr is the captured diagnostic output, when the command
	// captured it.
	Stderr string `json:"stderr,omitempty"`
}
