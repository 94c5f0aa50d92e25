// Package fsops is the host-platform filesystem layer.
//
// It applies compiled wildcard patterns to the real filesystem (Glob,
// Walk), splices wildcard expansions into argument vectors (ExpandArgs),
// and provides the plain file primitives the rest of the tool builds on:
// existence/kind queries, copy, move, remove, directory listing,
// temporary file creation, and platform executable-suffix handling.
package fsops
