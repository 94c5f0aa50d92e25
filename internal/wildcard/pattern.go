package wildcard

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Pattern is the compiled form of a wildcard spec: an anchored regular
// expression over slash-normalized paths, the literal root directory that
// anchors the tree walk, a recursion flag, and zero or more compiled
// exclude expressions.
type Pattern struct {
	// Raw is the original spec string, including any exclude suffix.
	Raw string

	// Root is the longest literal directory prefix before the first
	// wildcard. It is the directory a walker should start from.
	Root string

	// Regex matches candidate paths as presented by the walker:
	// slash-separated, prefixed with "./" when Root is ".".
	Regex *regexp.Regexp

	// Recursive is true iff the spec contains a literal "**".
	Recursive bool

	// Excludes are compiled from the "|"-separated suffix of the spec.
	// A candidate matching any of them is rejected.
	Excludes []*regexp.Regexp
}

// Sentinels for the two-phase wildcard substitution. "**" is replaced
// before "*" so that a single star can never be re-read out of an
// already-substituted double star.
const (
	sentinelDeep = "\x00"
	sentinelFlat = "\x01"
)

// escaper prefixes the characters the match engine would otherwise
// interpret, so literal path characters stay literal.
var escaper = strings.NewReplacer(
	"+", `\+`,
	".", `\.`,
	"-", `\-`,
	"^", `\^`,
	"$", `\$`,
	"(", `\(`,
	")", `\)`,
	"%", `\%`,
)

// Compile translates a wildcard spec into a Pattern.
//
// The spec may contain "*" (any characters within one path segment),
// "**" (any characters across segments), and a trailing
// "|excl1|excl2|..." exclusion suffix. Excludes are compiled with the
// same normalization, escaping, and substitution as the main spec, but
// carry no root, recursion flag, or nested excludes of their own.
func Compile(spec string) (*Pattern, error) {
	main, rest, hasExcludes := strings.Cut(spec, "|")

	main = normalize(main)
	if main == "" {
		return nil, fmt.Errorf("wildcard spec %q: missing path", spec)
	}

	root := rootOf(main)

	body := translate(main)
	if root == "." {
		// Anchor relative patterns so they cannot alias an unrelated
		// absolute path that happens to share a suffix.
		body = `\./` + body
	}

	re, err := regexp.Compile("^" + body + "$")
	if err != nil {
		return nil, fmt.Errorf("wildcard spec %q: %w", spec, err)
	}

	var excludes []*regexp.Regexp
	if hasExcludes {
		for _, ex := range strings.Split(rest, "|") {
			ex = normalize(ex)
			if ex == "" {
				continue
			}
			exRE, err := regexp.Compile("^" + translate(ex) + "$")
			if err != nil {
				return nil, fmt.Errorf("wildcard exclude %q: %w", ex, err)
			}
			excludes = append(excludes, exRE)
		}
	}

	return &Pattern{
		Raw:       spec,
		Root:      root,
		Regex:     re,
		Recursive: strings.Contains(main, "**"),
		Excludes:  excludes,
	}, nil
}

// Match reports whether a walker candidate path satisfies the pattern
// and none of its excludes. Excludes are matched against the candidate
// with a leading "./" stripped, so "."-rooted candidates and plain
// relative excludes line up.
func (p *Pattern) Match(candidate string) bool {
	if !p.Regex.MatchString(candidate) {
		return false
	}
	trimmed := strings.TrimPrefix(candidate, "./")
	for _, ex := range p.Excludes {
		if ex.MatchString(trimmed) {
			return false
		}
	}
	return true
}

// normalize converts separators to the canonical "/", collapses runs
// of separators into one, and drops a leading "./" so that explicitly
// dot-relative specs compile the same as plain relative ones.
func normalize(spec string) string {
	s := strings.ReplaceAll(spec, `\`, "/")
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}
	return strings.TrimPrefix(s, "./")
}

// rootOf returns the directory portion of the substring preceding the
// first "*" in the normalized spec, or the directory portion of the
// whole spec when it contains no wildcard.
func rootOf(main string) string {
	prefix := main
	if idx := strings.IndexByte(main, '*'); idx >= 0 {
		prefix = main[:idx]
	}
	return path.Dir(prefix)
}

// translate escapes engine metacharacters and substitutes wildcards.
// The order is load-bearing: escape first, then "**" to a sentinel,
// then the remaining "*" to a second sentinel, then expand sentinels.
func translate(spec string) string {
	s := escaper.Replace(spec)
	s = strings.ReplaceAll(s, "**", sentinelDeep)
	s = strings.ReplaceAll(s, "*", sentinelFlat)
	s = strings.ReplaceAll(s, sentinelDeep, ".*")
	s = strings.ReplaceAll(s, sentinelFlat, "[^/]*")
	return s
}
