// Package sched implements a single-threaded cooperative scheduler.
//
// Tasks are registered with Go and driven by Run. Although each task
// executes on its own goroutine, only one of them is ever runnable at a
// time: the runner blocks while a task runs, and a task hands control
// back only by calling Yield. The runner resumes suspended tasks in
// round-robin order; a task that never yields runs to completion before
// anything else gets a turn.
//
// The token passed to Yield is recorded on the task for the scheduler
// to consult when deciding when to resume. The stock round-robin runner
// ignores it and resumes eagerly; it does not self-throttle.
//
// Whether the caller is inside a scheduled task is carried through
// context.Context, so code deep in the call tree can pick its waiting
// discipline (see internal/proc) without plumbing scheduler state.
package sched

import (
	"context"
	"errors"
	"fmt"
)

// task is the runner-side handle for one cooperative task.
type task struct {
	name    string
	fn      func(context.Context) error
	resume  chan struct{}
	events  chan event
	started bool

	// token is whatever the task last passed to Yield, typically the
	// process handle it is waiting on.
	token any
}

// event is a task-to-runner handoff: either a suspension carrying a
// wait token, or completion carrying the task's error.
type event struct {
	done  bool
	token any
	err   error
}

type ctxKey struct{}

// Scheduler runs registered tasks cooperatively.
type Scheduler struct {
	pending []*task
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Go registers a named task. Tasks must be registered before Run is
// called; the function does not start until the runner gives it a turn.
func (s *Scheduler) Go(name string, fn func(ctx context.Context) error) {
	s.pending = append(s.pending, &task{
		name:   name,
		fn:     fn,
		resume: make(chan struct{}),
		events: make(chan event),
	})
}

// Run drives all registered tasks until every one of them has finished,
// interleaving them at their yield points. It returns the joined errors
// of all failed tasks, each prefixed with the task name.
func (s *Scheduler) Run(ctx context.Context) error {
	queue := s.pending
	s.pending = nil

	var errs []error
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		if !t.started {
			t.started = true
			taskCtx := context.WithValue(ctx, ctxKey{}, t)
			go func(t *task) {
				err := t.fn(taskCtx)
				t.events <- event{done: true, err: err}
			}(t)
		} else {
			t.resume <- struct{}{}
		}

		// Block until the task either yields or finishes. This is what
		// keeps the scheduler logically single-threaded.
		ev := <-t.events
		if ev.done {
			if ev.err != nil {
				errs = append(errs, fmt.Errorf("task %s: %w", t.name, ev.err))
			}
			continue
		}
		t.token = ev.token
		queue = append(queue, t)
	}
	return errors.Join(errs...)
}

// Yield suspends the current task until the scheduler resumes it,
// handing the runner a wait token. Outside a scheduled task it is a
// no-op: there is no runner to hand control to.
func Yield(ctx context.Context, token any) {
	t, ok := ctx.Value(ctxKey{}).(*task)
	if !ok {
		return
	}
	t.events <- event{token: token}
	<-t.resume
}

// InTask reports whether ctx belongs to a task currently driven by a
// Scheduler.
func InTask(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(*task)
	return ok
}
