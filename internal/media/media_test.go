package media

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dhowlett/scarebox/internal/config"
)

// testLibrary returns a Library over a temp dir with the given themes
// fully populated on disk.
func testLibrary(t *testing.T, themes ...string) Library {
	t.Helper()

	dir := t.TempDir()
	lib := Library{
		Dir:         dir,
		Themes:      themes,
		VideoSuffix: "ScareV.mp4",
		ImageSuffix: "Start.png",
	}

	for _, theme := range themes {
		require.NoError(t, os.WriteFile(lib.VideoPath(theme), []byte("v"), 0o600))
		require.NoError(t, os.WriteFile(lib.ImagePath(theme), []byte("i"), 0o600))
	}

	return lib
}

// TestLibraryPaths verifies the suffix naming convention.
func TestLibraryPaths(t *testing.T) {
	t.Parallel()

	lib := Library{Dir: "/media", VideoSuffix: "ScareV.mp4", ImageSuffix: "Start.png"}

	require.Equal(t, filepath.Join("/media", "MaleScareV.mp4"), lib.VideoPath("Male"))
	require.Equal(t, filepath.Join("/media", "MaleStart.png"), lib.ImagePath("Male"))
}

// TestLibraryValidate verifies present assets pass and a missing video fails.
func TestLibraryValidate(t *testing.T) {
	t.Parallel()

	lib := testLibrary(t, "Witch")
	require.NoError(t, lib.Validate("Witch"))

	require.NoError(t, os.Remove(lib.VideoPath("Witch")))

	err := lib.Validate("Witch")
	require.ErrorIs(t, err, ErrMissingAsset)
	require.Contains(t, err.Error(), lib.VideoPath("Witch"))
}

// TestLibraryCheckTheme verifies membership checks name the valid choices.
func TestLibraryCheckTheme(t *testing.T) {
	t.Parallel()

	lib := Library{Themes: []string{"Male", "Female"}}

	require.NoError(t, lib.CheckTheme("Male"))

	err := lib.CheckTheme("Ghost")
	require.ErrorIs(t, err, ErrUnknownTheme)
	require.Contains(t, err.Error(), "Female")
}

// TestPlayerCommand verifies the player argument list, including the OSD toggle.
func TestPlayerCommand(t *testing.T) {
	t.Parallel()

	cfg := config.VideoConfig{
		Player:      "omxplayer",
		Output:      "both",
		Resolution:  config.Resolution{Width: 1280, Height: 720},
		AspectMode:  "fill",
		Orientation: 180,
		Volume:      -600,
	}

	argv := PlayerCommand(cfg, "/media/MaleScareV.mp4")
	require.Equal(t, []string{
		"omxplayer", "/media/MaleScareV.mp4",
		"-o", "both",
		"--win", "0 0 1280 720",
		"--aspect-mode", "fill",
		"--orientation", "180",
		"--vol", "-600",
		"--no-osd",
	}, argv)

	cfg.ShowOSD = true
	require.NotContains(t, PlayerCommand(cfg, "x.mp4"), "--no-osd")
}

// TestRecordCommand verifies the recorder argument list, including the preview toggle.
func TestRecordCommand(t *testing.T) {
	t.Parallel()

	cfg := config.CameraConfig{Recorder: "raspivid", DurationMS: 5000, Rotation: 180}

	argv := RecordCommand(cfg, "/rec/out.h264")
	require.Equal(t, []string{"raspivid", "-o", "/rec/out.h264", "-t", "5000", "-rot", "180", "-n"}, argv)

	cfg.Preview = true
	require.NotContains(t, RecordCommand(cfg, "x.h264"), "-n")
}

// TestViewerCommand verifies the framebuffer viewer argument list.
func TestViewerCommand(t *testing.T) {
	t.Parallel()

	cfg := config.DisplayConfig{Viewer: "fbi", Device: "/dev/fb0", Terminal: 1}

	require.Equal(t,
		[]string{"fbi", "-T", "1", "-d", "/dev/fb0", "-noverbose", "-once", "/media/MaleStart.png"},
		ViewerCommand(cfg, "/media/MaleStart.png"))
}

// TestRecordingPath verifies the timestamped naming convention.
func TestRecordingPath(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 10, 31, 21, 4, 5, 0, time.UTC)
	require.Equal(t, filepath.Join("/rec", "2025-10-31_21.04.05.h264"), RecordingPath("/rec", ts))
}

// TestEnsureDir verifies directory creation is idempotent.
func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "recordings")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	require.DirExists(t, dir)
}
