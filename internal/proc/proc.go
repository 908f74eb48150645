package proc

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrEmptyCommand is returned when Start is given an empty argument list.
var ErrEmptyCommand = errors.New("empty command")

// Handle tracks one started OS process.
type Handle interface {
	// Running reports whether the process has not yet exited.
	Running() bool

	// Wait blocks until the process exits or the context is canceled.
	// On cancellation the process keeps running; only the wait is abandoned.
	Wait(ctx context.Context) error

	// Kill terminates the process.
	Kill() error

	// ExitCode returns the process exit code, or -1 while it is running.
	ExitCode() int
}

// Runner starts OS processes from argument lists.
type Runner interface {
	// Start launches argv[0] with the remaining arguments, non-blocking.
	Start(ctx context.Context, argv []string) (Handle, error)
}

// ExecRunner runs real processes via os/exec.
type ExecRunner struct{}

// Start launches the command and begins reaping it in the background.
func (ExecRunner) Start(_ context.Context, argv []string) (Handle, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	h := &execHandle{
		cmd:  cmd,
		done: make(chan struct{}),
	}

	go func() {
		h.waitErr = cmd.Wait()
		close(h.done)
	}()

	return h, nil
}

// execHandle wraps a started exec.Cmd. The spawned reaper goroutine is
// the only writer of waitErr, and done is closed after the write, so
// readers always observe a consistent value.
type execHandle struct {
	cmd     *exec.Cmd
	done    chan struct{}
	waitErr error
}

func (h *execHandle) Running() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

func (h *execHandle) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return h.waitErr
	}
}

func (h *execHandle) Kill() error {
	return h.cmd.Process.Kill()
}

func (h *execHandle) ExitCode() int {
	select {
	case <-h.done:
		return h.cmd.ProcessState.ExitCode()
	default:
		return -1
	}
}
