// Package workdir maintains the process-wide working-directory context.
//
// The working directory is shared mutable state for the whole process:
// one logical "current directory" plus a one-slot memory of the previous
// directory that enables a single-level toggle (cd -). Only one previous
// directory is remembered at a time; nested toggles lose history beyond
// one level. That is intentional.
//
// Cooperative tasks that suspend around process waits must tolerate
// peers moving the directory while they sleep; internal/proc restores
// the directory it observed on entry to its wait loop via Restore, which
// deliberately leaves the toggle slot alone.
package workdir

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Context is the working-directory state. The current directory lives in
// the operating system; Context only carries the one-slot previous
// directory that backs the toggle.
type Context struct {
	mu       sync.Mutex
	previous string
}

// Default is the process-wide context. All directory changes in the tool
// go through it unless a test substitutes its own Context.
var Default = &Context{}

// Current returns the current working directory.
func (c *Context) Current() (string, error) {
	return os.Getwd()
}

// Change moves to dir and remembers the directory it left as the one
// toggle slot, overwriting whatever was remembered before.
func (c *Context) Change(dir string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("change directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("change directory: %w", err)
	}
	c.previous = cur
	return nil
}

// Toggle swaps the current directory with the remembered previous one
// and returns the directory it moved to. It is an error to toggle before
// any Change has populated the slot.
func (c *Context) Toggle() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.previous == "" {
		return "", errors.New("no previous directory to return to")
	}
	cur, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("toggle directory: %w", err)
	}
	target := c.previous
	if err := os.Chdir(target); err != nil {
		return "", fmt.Errorf("toggle directory: %w", err)
	}
	c.previous = cur
	return target, nil
}

// Restore moves back to a directory snapshot without touching the
// toggle slot. Process waits use it to undo drift caused by peer tasks
// during suspension.
func (c *Context) Restore(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("restore directory: %w", err)
	}
	return nil
}
