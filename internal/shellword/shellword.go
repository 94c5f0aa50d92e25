// Package shellword tokenizes command-line strings into argument
// vectors, so a command can be given to the CLI as one quoted string.
//
// The grammar is the common POSIX-ish subset: words separated by
// unquoted whitespace, single quotes taken literally, double quotes
// honoring \" and \\ escapes, and bare backslashes escaping the next
// character. Variable expansion and globbing are not this package's
// business; wildcard expansion happens later, per argument, in
// internal/fsops.
package shellword

import (
	"fmt"
	"strings"
	"unicode"
)

// Split tokenizes a command string into its argument vector.
// An unterminated quote or a trailing backslash is an input error.
func Split(s string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inWord  bool
	)

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\\':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("command %q: trailing backslash", s)
			}
			i++
			current.WriteRune(runes[i])
			inWord = true

		case c == '\'':
			end := indexRuneFrom(runes, i+1, '\'')
			if end < 0 {
				return nil, fmt.Errorf("command %q: unterminated single quote", s)
			}
			current.WriteString(string(runes[i+1 : end]))
			i = end
			inWord = true

		case c == '"':
			i++
			closed := false
			for i < len(runes) {
				if runes[i] == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
					current.WriteRune(runes[i+1])
					i += 2
					continue
				}
				if runes[i] == '"' {
					closed = true
					break
				}
				current.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("command %q: unterminated double quote", s)
			}
			inWord = true

		case unicode.IsSpace(c):
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}

		default:
			current.WriteRune(c)
			inWord = true
		}
	}

	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}

func indexRuneFrom(runes []rune, from int, want rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == want {
			return i
		}
	}
	return -1
}
