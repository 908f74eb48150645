package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings shared by the scare binaries.
type Config struct {
	// GPIO describes the motion sensor wiring.
	GPIO GPIOConfig `yaml:"gpio"`
	// Paths locates media assets and the recordings directory.
	Paths PathsConfig `yaml:"paths"`
	// Video configures the external video player command.
	Video VideoConfig `yaml:"video"`
	// Camera configures the external reaction recorder command.
	Camera CameraConfig `yaml:"camera"`
	// Themes lists the available scare themes and the asset naming scheme.
	Themes ThemesConfig `yaml:"themes"`
	// Display configures the framebuffer image viewer command.
	Display DisplayConfig `yaml:"display"`
	// Motion controls the sensor polling loop.
	Motion MotionConfig `yaml:"motion"`
	// Logging controls log level and destinations.
	Logging LoggingConfig `yaml:"logging"`
}

// GPIOConfig describes the motion sensor pin.
type GPIOConfig struct {
	// SensorPin is the pin the PIR sensor data line is wired to.
	SensorPin int `yaml:"sensor_pin"`
	// PinMode is the pin numbering scheme, "BCM" or "BOARD".
	PinMode string `yaml:"pin_mode"`
	// PullMode selects the internal pull resistor, "UP" or "DOWN".
	PullMode string `yaml:"pull_mode"`
}

// PathsConfig locates media on disk.
type PathsConfig struct {
	// MediaDir holds the theme start images and scare videos.
	MediaDir string `yaml:"media_dir"`
	// RecordingsDir receives timestamped reaction recordings.
	RecordingsDir string `yaml:"recordings_dir"`
}

// Resolution is a playback window size in pixels.
type Resolution struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// VideoConfig shapes the video player argument list.
type VideoConfig struct {
	// Player is the player executable name.
	Player string `yaml:"player"`
	// Output selects the audio output ("hdmi", "local" or "both").
	Output string `yaml:"output"`
	// Resolution is the playback window size.
	Resolution Resolution `yaml:"resolution"`
	// AspectMode is the player aspect handling ("fill", "letterbox", ...).
	AspectMode string `yaml:"aspect_mode"`
	// Orientation rotates playback in degrees.
	Orientation int `yaml:"orientation"`
	// Volume is the player volume in millibels.
	Volume int `yaml:"volume"`
	// ShowOSD keeps the player's on-screen display enabled.
	ShowOSD bool `yaml:"show_osd"`
}

// CameraConfig shapes the reaction recorder argument list.
type CameraConfig struct {
	// Recorder is the recorder executable name.
	Recorder string `yaml:"recorder"`
	// DurationMS is the fixed recording length in milliseconds.
	DurationMS int `yaml:"duration"`
	// Rotation rotates the captured video in degrees.
	Rotation int `yaml:"rotation"`
	// Preview keeps the camera preview window enabled while recording.
	Preview bool `yaml:"preview"`
}

// FileFormat is the asset filename suffix convention: assets for theme T
// are named <T><VideoSuffix> and <T><ImageSuffix>.
type FileFormat struct {
	VideoSuffix string `yaml:"video_suffix"`
	ImageSuffix string `yaml:"image_suffix"`
}

// ThemesConfig lists themes and their asset naming scheme.
type ThemesConfig struct {
	// Available is the set of configured theme names.
	Available []string `yaml:"available"`
	// FileFormat is the asset suffix convention.
	FileFormat FileFormat `yaml:"file_format"`
}

// DisplayConfig shapes the framebuffer image viewer argument list.
type DisplayConfig struct {
	// Viewer is the viewer executable name.
	Viewer string `yaml:"viewer"`
	// Device is the framebuffer device path.
	Device string `yaml:"device"`
	// Terminal is the virtual terminal the viewer attaches to.
	Terminal int `yaml:"terminal"`
}

// MotionConfig controls the sensor polling loop.
type MotionConfig struct {
	// PollInterval is the delay between sensor samples.
	PollInterval time.Duration `yaml:"poll_interval"`
}

// UnmarshalYAML accepts Go duration strings ("100ms", "1s") for
// poll_interval, which yaml cannot decode into time.Duration on its own.
// An absent or empty value keeps the current one.
func (m *MotionConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		PollInterval string `yaml:"poll_interval"`
	}

	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("motion section: %w", err)
	}

	if raw.PollInterval == "" {
		return nil
	}

	interval, err := time.ParseDuration(raw.PollInterval)
	if err != nil {
		return fmt.Errorf("motion.poll_interval: %w", err)
	}

	m.PollInterval = interval

	return nil
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum log level name.
	Level string `yaml:"level"`
	// Console enables stdout logging.
	Console bool `yaml:"console_output"`
	// File, when set, enables a rotating log file at this path.
	File string `yaml:"log_file"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "config.yaml"

	// DefaultPollInterval is the default delay between sensor samples.
	DefaultPollInterval = 100 * time.Millisecond
)

var (
	// errNoThemes is returned when the theme set is empty.
	errNoThemes = errors.New("at least one theme must be configured")
	// errBadPollInterval is returned when the polling interval is negative.
	errBadPollInterval = errors.New("polling interval must not be negative")
	// errBadCameraDuration is returned when the recording duration is not positive.
	errBadCameraDuration = errors.New("camera duration must be positive")
)

// Default returns the built-in configuration used when no settings file exists.
func Default() *Config {
	return &Config{
		GPIO: GPIOConfig{
			SensorPin: 7,
			PinMode:   "BCM",
			PullMode:  "DOWN",
		},
		Paths: PathsConfig{
			MediaDir:      "/home/pi/Projects/Halloween/ScareMedia",
			RecordingsDir: "/home/pi/Projects/Halloween/Recordings",
		},
		Video: VideoConfig{
			Player:      "omxplayer",
			Output:      "both",
			Resolution:  Resolution{Width: 1280, Height: 720},
			AspectMode:  "fill",
			Orientation: 180,
			Volume:      -600,
			ShowOSD:     false,
		},
		Camera: CameraConfig{
			Recorder:   "raspivid",
			DurationMS: 5000,
			Rotation:   180,
			Preview:    false,
		},
		Themes: ThemesConfig{
			Available: []string{"Male", "Female", "Child"},
			FileFormat: FileFormat{
				VideoSuffix: "ScareV.mp4",
				ImageSuffix: "Start.png",
			},
		},
		Display: DisplayConfig{
			Viewer:   "fbi",
			Device:   "/dev/fb0",
			Terminal: 1,
		},
		Motion: MotionConfig{
			PollInterval: DefaultPollInterval,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file is reported via fs.ErrNotExist so callers can fall back
// to Default with a warning; a malformed file is a hard error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their default values.
	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the provided settings for required fields,
// filling defaults for values left empty.
func Validate(cfg *Config) error {
	if len(cfg.Themes.Available) == 0 {
		return errNoThemes
	}

	if cfg.Motion.PollInterval < 0 {
		return fmt.Errorf("motion.poll_interval %s: %w", cfg.Motion.PollInterval, errBadPollInterval)
	}

	if cfg.Motion.PollInterval == 0 {
		cfg.Motion.PollInterval = DefaultPollInterval
	}

	if cfg.Camera.DurationMS <= 0 {
		return fmt.Errorf("camera.duration %d: %w", cfg.Camera.DurationMS, errBadCameraDuration)
	}

	defaults := Default()

	if cfg.Video.Player == "" {
		cfg.Video.Player = defaults.Video.Player
	}

	if cfg.Camera.Recorder == "" {
		cfg.Camera.Recorder = defaults.Camera.Recorder
	}

	if cfg.Display.Viewer == "" {
		cfg.Display.Viewer = defaults.Display.Viewer
	}

	if cfg.Themes.FileFormat.VideoSuffix == "" {
		cfg.Themes.FileFormat.VideoSuffix = defaults.Themes.FileFormat.VideoSuffix
	}

	if cfg.Themes.FileFormat.ImageSuffix == "" {
		cfg.Themes.FileFormat.ImageSuffix = defaults.Themes.FileFormat.ImageSuffix
	}

	return nil
}
