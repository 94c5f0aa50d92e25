package fsops

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/mmr-tortoise/runway/internal/wildcard"
)

// Glob resolves a wildcard spec into the ordered list of filesystem
// entries under its root that match the compiled pattern, match none of
// its excludes, and satisfy the mode.
//
// A root that does not exist (or is not a directory) yields an empty
// list rather than an error, so callers can let a non-matching spec
// degrade to a literal token.
func Glob(spec string, mode wildcard.Mode) ([]string, error) {
	p, err := wildcard.Compile(spec)
	if err != nil {
		return nil, err
	}
	return Walk(p, mode)
}

// Walk applies a compiled pattern to the filesystem.
//
// Non-recursive patterns scan only the root directory listing; recursive
// patterns descend the whole subtree. Results are slash-normalized and
// returned in the deterministic lexical order of the underlying
// directory reads. The root itself is never a result, and results of
// "."-rooted patterns are returned without the "./" match anchor.
func Walk(p *wildcard.Pattern, mode wildcard.Mode) ([]string, error) {
	info, err := os.Stat(p.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var matches []string
	keep := func(rel string, isDir bool) {
		if !modeAllows(mode, isDir) {
			return
		}
		candidate := rel
		if p.Root == "." {
			candidate = "./" + rel
		}
		if p.Match(candidate) {
			matches = append(matches, rel)
		}
	}

	if !p.Recursive {
		entries, err := os.ReadDir(p.Root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			keep(path.Join(p.Root, e.Name()), e.IsDir())
		}
		return matches, nil
	}

	err = filepath.WalkDir(p.Root, func(pth string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if pth == p.Root {
			return nil
		}
		keep(filepath.ToSlash(pth), d.IsDir())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ExpandArgs applies wildcard expansion to each argument independently.
//
// An argument that resolves to one or more filesystem entries (mode Any)
// is replaced by those entries, spliced in place; an argument that
// matches nothing — including one that is not a wildcard at all, or that
// fails to compile — passes through verbatim. Relative order of the
// arguments is always preserved.
func ExpandArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		matches, err := Glob(arg, wildcard.ModeAny)
		if err != nil || len(matches) == 0 {
			out = append(out, arg)
			continue
		}
		out = append(out, matches...)
	}
	return out
}

func modeAllows(mode wildcard.Mode, isDir bool) bool {
	switch mode {
	case wildcard.ModeFiles:
		return !isDir
	case wildcard.ModeDirs:
		return isDir
	default:
		return true
	}
}
