package fsops

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Exists reports whether the path refers to any filesystem entry.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether the path refers to a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the path refers to a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListDir returns the sorted names of the entries in a directory.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// CopyFile copies a regular file, preserving its permission bits.
// The destination is truncated if it already exists.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("copy %s: not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("copy to %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// CopyDir recursively copies a directory tree. Symlinks inside the tree
// are copied as the files they point to.
func CopyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("copy %s: not a directory", src)
	}

	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("copy to %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())
		if e.IsDir() {
			if err := CopyDir(from, to); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(from, to); err != nil {
			return err
		}
	}
	return nil
}

// Move renames a file or directory, falling back to copy-and-remove when
// the rename crosses filesystems.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if IsDir(src) {
		if err := CopyDir(src, dst); err != nil {
			return err
		}
		return RemoveDir(src)
	}
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	return RemoveFile(src)
}

// RemoveFile deletes a single file.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// RemoveDir deletes a directory and everything beneath it.
func RemoveDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// TempFile creates a fresh uniquely named file in the default temporary
// directory and returns its path along with the open handle. The caller
// owns both: close the handle and remove the path when done.
func TempFile() (string, *os.File, error) {
	f, err := os.CreateTemp("", "runway-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	return f.Name(), f, nil
}

// ExeSuffix returns the platform executable suffix: ".exe" on Windows,
// empty elsewhere.
func ExeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// LookProgram resolves a program name against PATH, retrying with the
// platform executable suffix when the bare name is not found.
func LookProgram(name string) (string, error) {
	if p, err := exec.LookPath(name); err == nil {
		return p, nil
	}
	if suffix := ExeSuffix(); suffix != "" && filepath.Ext(name) != suffix {
		if p, err := exec.LookPath(name + suffix); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("program %q not found in PATH", name)
}
