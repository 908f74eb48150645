package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestLoadMissingFile verifies a missing settings file surfaces fs.ErrNotExist
// so callers can fall back to defaults.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

// TestLoadMalformedFile verifies a present but unparseable file is a hard error.
func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gpio: [not a mapping"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	require.False(t, errors.Is(err, fs.ErrNotExist))
}

// TestLoadOverridesDefaults verifies file values override defaults and
// absent keys keep their default values.
func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	contents := `
gpio:
  sensor_pin: 17
themes:
  available: [Witch, Ghost]
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 17, cfg.GPIO.SensorPin)
	require.Equal(t, []string{"Witch", "Ghost"}, cfg.Themes.Available)

	// Untouched sections keep defaults.
	require.Equal(t, "omxplayer", cfg.Video.Player)
	require.Equal(t, DefaultPollInterval, cfg.Motion.PollInterval)
	require.Equal(t, "ScareV.mp4", cfg.Themes.FileFormat.VideoSuffix)
}

// TestLoadPollIntervalString verifies duration strings are accepted for
// the polling interval.
func TestLoadPollIntervalString(t *testing.T) {
	t.Parallel()

	contents := `
motion:
  poll_interval: 250ms
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.Motion.PollInterval)

	// An unparseable interval is a hard error.
	require.NoError(t, os.WriteFile(path, []byte("motion:\n  poll_interval: soon\n"), 0o600))

	_, err = Load(path)
	require.Error(t, err)
}

// TestValidate checks rejection of impossible values and defaulting of empty ones.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty theme set.
	cfg := Default()
	cfg.Themes.Available = nil
	require.Error(t, Validate(cfg))

	// Negative poll interval.
	cfg = Default()
	cfg.Motion.PollInterval = -time.Second
	require.Error(t, Validate(cfg))

	// Zero poll interval is defaulted.
	cfg = Default()
	cfg.Motion.PollInterval = 0
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultPollInterval, cfg.Motion.PollInterval)

	// Non-positive camera duration.
	cfg = Default()
	cfg.Camera.DurationMS = 0
	require.Error(t, Validate(cfg))

	// Empty executable names are defaulted.
	cfg = Default()
	cfg.Video.Player = ""
	cfg.Display.Viewer = ""
	require.NoError(t, Validate(cfg))
	require.Equal(t, "omxplayer", cfg.Video.Player)
	require.Equal(t, "fbi", cfg.Display.Viewer)
}
