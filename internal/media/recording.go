package media

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// recordingTimeLayout names recording files by wall-clock capture time.
const recordingTimeLayout = "2006-01-02_15.04.05"

// recordingExt is the container produced by the camera recorder.
const recordingExt = ".h264"

// DirPermissions for the recordings directory.
const DirPermissions = 0o755

// RecordingPath returns a timestamped file path under dir for a new
// reaction recording. Paths are generated fresh per scare cycle and
// never reused.
func RecordingPath(dir string, now time.Time) string {
	return filepath.Join(dir, now.Format(recordingTimeLayout)+recordingExt)
}

// EnsureDir creates the recordings directory if absent. Idempotent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("create recordings directory: %w", err)
	}

	return nil
}

// Exists reports whether a recording file materialized on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
