package media

import (
	"fmt"
	"strconv"

	"github.com/dhowlett/scarebox/internal/config"
)

// PlayerCommand builds the video player argument list for the given file.
func PlayerCommand(cfg config.VideoConfig, videoPath string) []string {
	argv := []string{
		cfg.Player,
		videoPath,
		"-o", cfg.Output,
		"--win", fmt.Sprintf("0 0 %d %d", cfg.Resolution.Width, cfg.Resolution.Height),
		"--aspect-mode", cfg.AspectMode,
		"--orientation", strconv.Itoa(cfg.Orientation),
		"--vol", strconv.Itoa(cfg.Volume),
	}

	if !cfg.ShowOSD {
		argv = append(argv, "--no-osd")
	}

	return argv
}

// RecordCommand builds the camera recorder argument list writing to outPath.
func RecordCommand(cfg config.CameraConfig, outPath string) []string {
	argv := []string{
		cfg.Recorder,
		"-o", outPath,
		"-t", strconv.Itoa(cfg.DurationMS),
		"-rot", strconv.Itoa(cfg.Rotation),
	}

	if !cfg.Preview {
		argv = append(argv, "-n")
	}

	return argv
}

// ViewerCommand builds the framebuffer image viewer argument list.
// The viewer detaches and keeps the image on screen until killed.
func ViewerCommand(cfg config.DisplayConfig, imagePath string) []string {
	return []string{
		cfg.Viewer,
		"-T", strconv.Itoa(cfg.Terminal),
		"-d", cfg.Device,
		"-noverbose",
		"-once",
		imagePath,
	}
}
