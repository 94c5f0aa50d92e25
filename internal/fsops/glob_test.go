package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/runway/internal/wildcard"
)

// setupTree creates a directory containing a.c, b.c, notes.txt, and
// sub/c.c, changes into it for the duration of the test, and returns
// its path. Test code that globs relative patterns depends on the
// working directory, so the previous one is restored on cleanup.
func setupTree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{"a.c", "b.c", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.c"), []byte("c\n"), 0644))

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	return dir
}

// TestGlobSingleStar verifies that "*.c" matches only the files in the
// root directory, not those in subdirectories.
func TestGlobSingleStar(t *testing.T) {
	setupTree(t)

	matches, err := Glob("*.c", wildcard.ModeFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.c"}, matches)
}

// TestGlobDoubleStar verifies that "**.c" descends into subdirectories.
func TestGlobDoubleStar(t *testing.T) {
	setupTree(t)

	matches, err := Glob("**.c", wildcard.ModeFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.c", "sub/c.c"}, matches)
}

// TestGlobModes verifies that mode "a" equals the union of modes "f"
// and "d" for the same pattern.
func TestGlobModes(t *testing.T) {
	setupTree(t)

	files, err := Glob("**", wildcard.ModeFiles)
	require.NoError(t, err)
	dirs, err := Glob("**", wildcard.ModeDirs)
	require.NoError(t, err)
	any, err := Glob("**", wildcard.ModeAny)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.c", "b.c", "notes.txt", "sub/c.c"}, files)
	assert.Equal(t, []string{"sub"}, dirs)
	assert.ElementsMatch(t, append(append([]string{}, files...), dirs...), any)
	assert.Len(t, any, len(files)+len(dirs))
}

// TestGlobExcludes verifies that a path matching any exclude never
// appears, and a path matching no exclude appears exactly once.
func TestGlobExcludes(t *testing.T) {
	setupTree(t)

	matches, err := Glob("*.c|b.c", wildcard.ModeFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c"}, matches)

	matches, err = Glob("**.c|sub/**", wildcard.ModeFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.c"}, matches)
}

// TestGlobMissingRoot verifies that a spec rooted in a directory that
// does not exist resolves to an empty list, not an error.
func TestGlobMissingRoot(t *testing.T) {
	setupTree(t)

	matches, err := Glob("no-such-dir/*.c", wildcard.ModeFiles)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// TestGlobBadMode verifies that the bad-mode error from the translator
// surfaces through the mode parser, not as a silent default.
func TestGlobBadMode(t *testing.T) {
	_, err := wildcard.ParseMode("q")
	assert.Error(t, err)
}

// TestExpandArgs verifies order-preserving, per-argument expansion:
// literal arguments pass through untouched even when they do not exist,
// and a wildcard splices its matches in place.
func TestExpandArgs(t *testing.T) {
	setupTree(t)

	require.NoError(t, os.WriteFile("x.log", []byte("x"), 0644))
	require.NoError(t, os.WriteFile("y.log", []byte("y"), 0644))

	got := ExpandArgs([]string{"a.txt", "*.log", "b.txt"})
	assert.Equal(t, []string{"a.txt", "x.log", "y.log", "b.txt"}, got)
}

// TestExpandArgsNoMatches verifies that a wildcard matching nothing
// degrades to a literal token rather than vanishing.
func TestExpandArgsNoMatches(t *testing.T) {
	setupTree(t)

	got := ExpandArgs([]string{"-o", "out.bin", "*.nothing"})
	assert.Equal(t, []string{"-o", "out.bin", "*.nothing"}, got)
}

// TestExpandArgsExistingLiteral verifies that a literal argument naming
// an existing file expands to itself, unchanged.
func TestExpandArgsExistingLiteral(t *testing.T) {
	setupTree(t)

	got := ExpandArgs([]string{"a.c", "sub/c.c"})
	assert.Equal(t, []string{"a.c", "sub/c.c"}, got)
}

// TestWalkSubdirRoot verifies that a pattern rooted below "." returns
// root-prefixed paths.
func TestWalkSubdirRoot(t *testing.T) {
	setupTree(t)

	matches, err := Glob("sub/*.c", wildcard.ModeFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/c.c"}, matches)
}
