package proc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// Wait outcomes. A strictly positive outcome means the status value is
// the program's real exit code; zero means the process has not finished;
// negative means the wait mechanism itself failed and produced no usable
// status.
const (
	WaitFailed  = -1
	WaitRunning = 0
	WaitDone    = 1
)

// waitResult is what the reaper goroutine reports once the process has
// been waited on.
type waitResult struct {
	state *os.ProcessState
	err   error
}

// Handle owns a spawned process between Open and Close.
//
// A background goroutine reaps the process as soon as it exits and
// parks the result in a buffered channel, which is what lets Wait offer
// both a blocking and a zero-timeout polling form over the same
// process.
type Handle struct {
	cmd    *exec.Cmd
	done   chan waitResult
	result *waitResult
	closed bool
}

// Open spawns program with the given argument vector, output sinks, and
// environment (nil env inherits the parent's). On failure no handle
// exists and there is nothing to close.
func Open(program string, args []string, stdout, stderr io.Writer, env []string) (*Handle, error) {
	cmd := exec.Command(program, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if env != nil {
		cmd.Env = env
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", program, err)
	}

	h := &Handle{cmd: cmd, done: make(chan waitResult, 1)}
	go func() {
		err := cmd.Wait()
		h.done <- waitResult{state: cmd.ProcessState, err: err}
	}()
	return h, nil
}

// Wait reports the process outcome. A negative timeout blocks until the
// process exits; a zero timeout polls and returns immediately; a
// positive timeout waits at most that long. The status value is only
// meaningful when the outcome is WaitDone.
func (h *Handle) Wait(timeout time.Duration) (outcome, status int) {
	if h.result == nil {
		switch {
		case timeout < 0:
			r := <-h.done
			h.result = &r
		case timeout == 0:
			select {
			case r := <-h.done:
				h.result = &r
			default:
				return WaitRunning, -1
			}
		default:
			select {
			case r := <-h.done:
				h.result = &r
			case <-time.After(timeout):
				return WaitRunning, -1
			}
		}
	}

	r := h.result
	if r.state == nil {
		return WaitFailed, -1
	}
	if r.err != nil {
		// A non-zero exit surfaces as *exec.ExitError and still carries
		// the real status. Anything else is a wait-mechanism failure.
		var exitErr *exec.ExitError
		if !errors.As(r.err, &exitErr) {
			return WaitFailed, -1
		}
	}
	return WaitDone, r.state.ExitCode()
}

// Close releases the handle. It must be called exactly once per handle;
// a second call is an error. A still-running process is left to the
// reaper goroutine, so no zombie remains once it exits.
func (h *Handle) Close() error {
	if h.closed {
		return errors.New("process handle already closed")
	}
	h.closed = true
	return nil
}

// Pid returns the operating-system process id, for logging.
func (h *Handle) Pid() int {
	if h.cmd.Process == nil {
		return -1
	}
	return h.cmd.Process.Pid
}
