package proc

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/mmr-tortoise/runway/internal/fsops"
	"github.com/mmr-tortoise/runway/internal/sched"
	"github.com/mmr-tortoise/runway/internal/workdir"
)

// OutcomeFailed is the sentinel exit outcome for control-layer failure:
// the process could not be started, or the wait produced no usable
// status. Real program exit codes are always zero or positive.
const OutcomeFailed = -1

// Executor spawns external programs and awaits their completion with a
// waiting discipline chosen by context: blocking when no cooperative
// task is running, zero-timeout polling with yields when one is.
type Executor struct {
	// WD is the working-directory context restored around cooperative
	// wait loops. Defaults to the process-wide workdir.Default.
	WD *workdir.Context

	// Env, when non-nil, replaces the environment of spawned programs.
	Env []string

	// Log receives debug-level spawn/wait events.
	Log zerolog.Logger
}

// New returns an Executor bound to the process-wide working-directory
// context, with logging disabled.
func New() *Executor {
	return &Executor{WD: workdir.Default, Log: zerolog.Nop()}
}

// Execute expands the argument vector, spawns the program with the two
// sinks, awaits completion, and returns the normalized exit outcome:
// the program's own exit code, or OutcomeFailed when the spawn or the
// wait failed.
//
// Inside a cooperative task it polls with zero timeout and yields the
// process handle between polls; the working directory observed on entry
// to the wait loop is restored after it, so drift caused by peer tasks
// during suspension never leaks to the caller. Outside a task it blocks
// until the process exits.
func (e *Executor) Execute(ctx context.Context, program string, args []string, stdout, stderr io.Writer) int {
	argv := fsops.ExpandArgs(args)

	h, err := Open(program, argv, stdout, stderr, e.Env)
	if err != nil {
		e.Log.Debug().Err(err).Str("program", program).Msg("process failed to start")
		return OutcomeFailed
	}
	defer h.Close()

	e.Log.Debug().Str("program", program).Strs("args", argv).Int("pid", h.Pid()).Msg("process started")

	var outcome, status int
	if !sched.InTask(ctx) {
		outcome, status = h.Wait(-1)
	} else {
		dir, dirErr := e.WD.Current()
		for {
			outcome, status = h.Wait(0)
			if outcome != WaitRunning {
				break
			}
			sched.Yield(ctx, h)
		}
		if dirErr == nil {
			if err := e.WD.Restore(dir); err != nil {
				e.Log.Warn().Err(err).Str("dir", dir).Msg("could not restore working directory")
			}
		}
	}

	if outcome > 0 {
		e.Log.Debug().Str("program", program).Int("status", status).Msg("process finished")
		return status
	}
	e.Log.Debug().Str("program", program).Msg("wait produced no usable status")
	return OutcomeFailed
}
