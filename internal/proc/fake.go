package proc

import (
	"context"
	"sync"
)

// FakeHandle is a scriptable Handle for tests.
type FakeHandle struct {
	mu       sync.Mutex
	running  bool
	exitCode int
	waited   bool
	killed   bool
	// WaitErr is returned by Wait after the handle finishes.
	WaitErr error
}

// MarkRunning puts the handle in the running state.
// Tests use it from OnStart to model long-lived processes.
func (h *FakeHandle) MarkRunning() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = true
}

// Finish marks the process as exited with the given code.
func (h *FakeHandle) Finish(exitCode int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = false
	h.exitCode = exitCode
}

// Running reports whether Finish, Wait or Kill has been called yet.
func (h *FakeHandle) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.running
}

// Wait marks the process exited and returns WaitErr.
func (h *FakeHandle) Wait(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.waited = true
	h.running = false

	return h.WaitErr
}

// Kill marks the process killed.
func (h *FakeHandle) Kill() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.killed = true
	h.running = false

	return nil
}

// ExitCode returns the scripted exit code, or -1 while running.
func (h *FakeHandle) ExitCode() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return -1
	}

	return h.exitCode
}

// Waited reports whether Wait was called.
func (h *FakeHandle) Waited() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.waited
}

// Killed reports whether Kill was called.
func (h *FakeHandle) Killed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.killed
}

// FakeRunner records every Start call and returns scriptable handles.
type FakeRunner struct {
	mu       sync.Mutex
	launches [][]string
	handles  []*FakeHandle
	// StartErr maps an executable name to an error returned by Start.
	StartErr map[string]error
	// OnStart, when set, is called with the new handle before Start returns;
	// tests use it to keep specific processes "running".
	OnStart func(argv []string, h *FakeHandle)
}

// Start records the launch and hands out a new FakeHandle.
func (r *FakeRunner) Start(_ context.Context, argv []string) (Handle, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	r.mu.Lock()
	r.launches = append(r.launches, append([]string(nil), argv...))
	r.mu.Unlock()

	if err := r.StartErr[argv[0]]; err != nil {
		return nil, err
	}

	h := &FakeHandle{}

	if r.OnStart != nil {
		r.OnStart(argv, h)
	}

	r.mu.Lock()
	r.handles = append(r.handles, h)
	r.mu.Unlock()

	return h, nil
}

// Launches returns a copy of all recorded argument lists.
func (r *FakeRunner) Launches() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([][]string(nil), r.launches...)
}

// LaunchCount returns how many launches used the given executable.
func (r *FakeRunner) LaunchCount(executable string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0

	for _, argv := range r.launches {
		if argv[0] == executable {
			n++
		}
	}

	return n
}

// Handles returns every handle handed out so far.
func (r *FakeRunner) Handles() []*FakeHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*FakeHandle(nil), r.handles...)
}
