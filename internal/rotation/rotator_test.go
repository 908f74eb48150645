package rotation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewValidation verifies fail-fast checks on the theme set, interval
// and initial theme.
func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(nil, "Male", time.Minute)
	require.ErrorIs(t, err, ErrNoThemes)

	_, err = New([]string{"Male"}, "Male", 0)
	require.ErrorIs(t, err, ErrBadInterval)

	_, err = New([]string{"Male"}, "Male", -time.Minute)
	require.ErrorIs(t, err, ErrBadInterval)

	_, err = New([]string{"Male", "Female"}, "Ghost", time.Minute)
	require.ErrorIs(t, err, ErrUnknownTheme)
}

// TestMaybeRotateBeforeInterval verifies nothing changes while the
// interval has not elapsed, including the rotation timer.
func TestMaybeRotateBeforeInterval(t *testing.T) {
	t.Parallel()

	r, err := New([]string{"Male", "Female"}, "Male", 10*time.Minute)
	require.NoError(t, err)

	started := r.startedAt
	r.now = func() time.Time { return started.Add(9 * time.Minute) }

	theme, rotated := r.MaybeRotate(context.Background())
	require.False(t, rotated)
	require.Equal(t, "Male", theme)
	require.Equal(t, started, r.startedAt)
}

// TestMaybeRotateSwitches verifies a due rotation yields a different
// theme and resets the rotation timer.
func TestMaybeRotateSwitches(t *testing.T) {
	t.Parallel()

	r, err := New([]string{"Male", "Female", "Child"}, "Male", time.Minute)
	require.NoError(t, err)

	later := r.startedAt.Add(2 * time.Minute)
	r.now = func() time.Time { return later }
	// First draw hits the current theme, second draws a different one.
	draws := []int{0, 1}
	r.draw = func(int) int {
		d := draws[0]
		draws = draws[1:]

		return d
	}

	theme, rotated := r.MaybeRotate(context.Background())
	require.True(t, rotated)
	require.Equal(t, "Female", theme)
	require.Equal(t, "Female", r.Current())
	require.Equal(t, later, r.startedAt)
}

// TestMaybeRotateNeverRepeats verifies every successful rotation yields a
// theme different from the previous one.
func TestMaybeRotateNeverRepeats(t *testing.T) {
	t.Parallel()

	r, err := New([]string{"Male", "Female", "Child"}, "Male", time.Minute)
	require.NoError(t, err)

	for range 200 {
		r.now = func() time.Time { return r.startedAt.Add(time.Hour) }

		previous := r.Current()

		theme, rotated := r.MaybeRotate(context.Background())
		if rotated {
			require.NotEqual(t, previous, theme)
		} else {
			require.Equal(t, previous, theme)
		}
	}
}

// TestMaybeRotateSingleTheme verifies the draw budget terminates and the
// lone theme is retained.
func TestMaybeRotateSingleTheme(t *testing.T) {
	t.Parallel()

	r, err := New([]string{"Male"}, "Male", time.Minute)
	require.NoError(t, err)

	r.now = func() time.Time { return r.startedAt.Add(time.Hour) }

	draws := 0
	r.draw = func(n int) int {
		draws++

		return 0
	}

	theme, rotated := r.MaybeRotate(context.Background())
	require.False(t, rotated)
	require.Equal(t, "Male", theme)
	require.Equal(t, maxDrawAttempts, draws)
}
