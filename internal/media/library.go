package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/dhowlett/scarebox/internal/config"
)

// ErrMissingAsset indicates a theme's video or start image does not exist.
var ErrMissingAsset = errors.New("required media file not found")

// ErrUnknownTheme indicates a theme name outside the configured set.
var ErrUnknownTheme = errors.New("unknown theme")

// Library resolves theme names to asset paths using the shared suffix
// convention: <theme><VideoSuffix> and <theme><ImageSuffix> under Dir.
type Library struct {
	// Dir is the media directory.
	Dir string
	// Themes is the configured theme set.
	Themes []string
	// VideoSuffix is appended to the theme name for the scare video.
	VideoSuffix string
	// ImageSuffix is appended to the theme name for the start image.
	ImageSuffix string
}

// NewLibrary builds a Library from configuration.
func NewLibrary(cfg *config.Config) Library {
	return Library{
		Dir:         cfg.Paths.MediaDir,
		Themes:      cfg.Themes.Available,
		VideoSuffix: cfg.Themes.FileFormat.VideoSuffix,
		ImageSuffix: cfg.Themes.FileFormat.ImageSuffix,
	}
}

// VideoPath returns the scare video path for the theme.
func (l Library) VideoPath(theme string) string {
	return filepath.Join(l.Dir, theme+l.VideoSuffix)
}

// ImagePath returns the start image path for the theme.
func (l Library) ImagePath(theme string) string {
	return filepath.Join(l.Dir, theme+l.ImageSuffix)
}

// Contains reports whether the theme is part of the configured set.
func (l Library) Contains(theme string) bool {
	return slices.Contains(l.Themes, theme)
}

// CheckTheme verifies the theme is configured, naming the valid choices
// in the error so CLI users know what to pick.
func (l Library) CheckTheme(theme string) error {
	if !l.Contains(theme) {
		return fmt.Errorf("theme %q (configured themes: %v): %w", theme, l.Themes, ErrUnknownTheme)
	}

	return nil
}

// Validate checks that both of the theme's assets exist on disk.
func (l Library) Validate(theme string) error {
	for _, path := range []string{l.VideoPath(theme), l.ImagePath(theme)} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s: %w", path, ErrMissingAsset)
		}
	}

	return nil
}
