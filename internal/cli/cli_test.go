// Package cli — cli_test.go exercises the commands end to end through
// the cobra tree, capturing their output via the command writers.
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/runway/internal/config"
	"github.com/mmr-tortoise/runway/internal/model"
)

// sources populates a directory with the little C tree the glob and
// expand tests run against.
func sources(dir string) {
	for _, name := range []string{"a.c", "b.c"} {
		_ = os.WriteFile(filepath.Join(dir, name), []byte("int x;\n"), 0644)
	}
	_ = os.MkdirAll(filepath.Join(dir, "sub"), 0755)
	_ = os.WriteFile(filepath.Join(dir, "sub", "c.c"), []byte("int y;\n"), 0644)
}

func TestGlobCommand(t *testing.T) {
	dir := t.TempDir()
	sources(dir)

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	cfg = config.Default()
	t.Cleanup(func() { cfg = config.Default() })

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"glob", "*.c"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "a.c\nb.c\n", out.String())
}

func TestGlobCommandJSON(t *testing.T) {
	dir := t.TempDir()
	sources(dir)

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev); jsonOutput = false })

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"glob", "**.c", "--json"})

	require.NoError(t, root.Execute())

	var report model.GlobReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "**.c", report.Pattern)
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, []string{"a.c", "b.c", "sub/c.c"}, report.Matches)
}

func TestGlobCommandBadMode(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"glob", "*.c", "--mode", "nope"})

	err := root.Execute()
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitBadInput, cliErr.Code)
}

func TestExpandCommand(t *testing.T) {
	dir := t.TempDir()
	sources(dir)

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"expand", "cc", "-o", "app", "*.c"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "cc\n-o\napp\na.c\nb.c\n", out.String())
}

func TestRunCommand(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", "sh -c 'exit 0'"})

	assert.NoError(t, root.Execute())
}

func TestRunCommandFailure(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", "sh -c 'echo nope >&2; exit 1'"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestRunCommandCapture(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", "--capture", "sh -c 'printf hello'"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "hello", out.String())
}

func TestParCommand(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"par", "sh -c 'printf one'", "sh -c 'printf two'"})

	require.NoError(t, root.Execute())
	// Output is ordered by command position, not completion time.
	assert.Equal(t, "onetwo", out.String())
}

func TestParCommandFailureCount(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"par", "sh -c 'exit 0'", "sh -c 'exit 1'"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 commands failed")
}

func TestConfigExcludesApply(t *testing.T) {
	dir := t.TempDir()
	sources(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "runway.yaml"),
		[]byte("excludes:\n  - b.c\n"), 0644))

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev); cfg = config.Default() })

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"glob", "*.c"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "a.c\n", out.String())
}
