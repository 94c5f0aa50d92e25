// Package proc spawns external programs and normalizes their outcomes.
//
// The low-level surface is Open/Wait/Close over a process Handle; the
// Executor builds on it to expand wildcard arguments, pick a waiting
// discipline (blocking outside a cooperative task, zero-timeout polling
// with yields inside one), and fold every failure mode of the control
// layer into the single OutcomeFailed sentinel. The "crashed" versus
// "wait mechanism failed" distinction is deliberately not preserved.
//
// Run, IORun, and Exec are the result-mapping façades: capture-and-
// discard, capture-both-streams, and raw passthrough. Temporary capture
// files are removed on every path, success or failure.
package proc
