package proc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestExecRunnerWait verifies a real process can be started and waited on.
func TestExecRunnerWait(t *testing.T) {
	t.Parallel()

	h, err := ExecRunner{}.Start(context.Background(), []string{"sh", "-c", "exit 0"})
	require.NoError(t, err)

	require.NoError(t, h.Wait(context.Background()))
	require.False(t, h.Running())
	require.Equal(t, 0, h.ExitCode())
}

// TestExecRunnerExitCode verifies a non-zero exit code is surfaced.
func TestExecRunnerExitCode(t *testing.T) {
	t.Parallel()

	h, err := ExecRunner{}.Start(context.Background(), []string{"sh", "-c", "exit 3"})
	require.NoError(t, err)

	err = h.Wait(context.Background())
	require.Error(t, err)
	require.Equal(t, 3, h.ExitCode())
}

// TestExecRunnerStartFailure verifies a missing executable fails at Start.
func TestExecRunnerStartFailure(t *testing.T) {
	t.Parallel()

	_, err := ExecRunner{}.Start(context.Background(), []string{"definitely-not-a-real-binary-xyz"})
	require.Error(t, err)
}

// TestExecRunnerEmptyCommand verifies the empty argv sentinel.
func TestExecRunnerEmptyCommand(t *testing.T) {
	t.Parallel()

	_, err := ExecRunner{}.Start(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyCommand)
}

// TestExecRunnerWaitCanceled verifies Wait is abandoned on context cancel
// while the process keeps running.
func TestExecRunnerWaitCanceled(t *testing.T) {
	t.Parallel()

	h, err := ExecRunner{}.Start(context.Background(), []string{"sleep", "30"})
	require.NoError(t, err)

	defer func() { _ = h.Kill() }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = h.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.True(t, h.Running())
}

// TestFakeRunnerRecordsLaunches verifies launch recording and per-executable errors.
func TestFakeRunnerRecordsLaunches(t *testing.T) {
	t.Parallel()

	r := &FakeRunner{StartErr: map[string]error{"raspivid": errors.New("no camera")}}

	_, err := r.Start(context.Background(), []string{"omxplayer", "a.mp4"})
	require.NoError(t, err)

	_, err = r.Start(context.Background(), []string{"raspivid", "-o", "out.h264"})
	require.Error(t, err)

	require.Len(t, r.Launches(), 2)
	require.Equal(t, 1, r.LaunchCount("omxplayer"))
	require.Equal(t, 1, r.LaunchCount("raspivid"))
	require.Len(t, r.Handles(), 1)
}

// TestFakeHandleLifecycle verifies Running/Wait/Kill bookkeeping.
func TestFakeHandleLifecycle(t *testing.T) {
	t.Parallel()

	r := &FakeRunner{OnStart: func(_ []string, h *FakeHandle) { h.MarkRunning() }}

	h, err := r.Start(context.Background(), []string{"fbi", "img.png"})
	require.NoError(t, err)
	require.True(t, h.Running())
	require.Equal(t, -1, h.ExitCode())

	require.NoError(t, h.Wait(context.Background()))
	require.False(t, h.Running())
	require.Equal(t, 0, h.ExitCode())
}
