// Package wildcard translates ad-hoc wildcard path specifications into
// compiled, engine-matchable patterns.
//
// A spec uses "*" to match any characters within one path segment and
// "**" to match any characters across segments (recursive). A trailing
// "|excl1|excl2|..." suffix attaches exclusion patterns compiled the
// same way. Compilation produces the anchored regular expression, the
// literal root directory that a tree walker should start from, and a
// recursion flag.
//
// The package is pure translation: it never touches the filesystem.
// The walker that applies a compiled pattern lives in internal/fsops.
package wildcard
