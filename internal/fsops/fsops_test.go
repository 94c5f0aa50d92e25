package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, Exists(dir))
	assert.True(t, Exists(file))
	assert.False(t, Exists(filepath.Join(dir, "missing")))

	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))
	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0640))

	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestCopyDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "b.txt"), []byte("b"), 0644))

	dst := filepath.Join(dir, "copy")
	require.NoError(t, CopyDir(src, dst))

	assert.True(t, IsFile(filepath.Join(dst, "a.txt")))
	assert.True(t, IsFile(filepath.Join(dst, "nested", "b.txt")))
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.txt")
	dst := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(src, []byte("m"), 0644))

	require.NoError(t, Move(src, dst))
	assert.False(t, Exists(src))
	assert.True(t, IsFile(dst))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	require.NoError(t, RemoveFile(file))
	assert.False(t, Exists(file))

	tree := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(tree, "deep"), 0755))
	require.NoError(t, RemoveDir(tree))
	assert.False(t, Exists(tree))
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), nil, 0644))

	names, err := ListDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	_, err = ListDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestTempFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	path, f, err := TempFile()
	require.NoError(t, err)
	defer os.Remove(path)
	require.NoError(t, f.Close())

	other, g, err := TempFile()
	require.NoError(t, err)
	defer os.Remove(other)
	require.NoError(t, g.Close())

	assert.NotEqual(t, path, other, "temp paths must be unique per call")
}
