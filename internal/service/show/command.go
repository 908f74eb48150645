package show

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/dhowlett/scarebox/internal/config"
	"github.com/dhowlett/scarebox/internal/detector"
	"github.com/dhowlett/scarebox/internal/logger"
	"github.com/dhowlett/scarebox/internal/media"
	"github.com/dhowlett/scarebox/internal/proc"
	"github.com/dhowlett/scarebox/internal/rotation"
	"github.com/dhowlett/scarebox/internal/sensor"
)

// Options selects the show variant and its inputs.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Theme is the initial scare theme.
	Theme string
	// Recording enables reaction recording and playback per scare cycle.
	Recording bool
	// RotationInterval, when positive, enables timed theme rotation.
	RotationInterval time.Duration
	// MockSensor replaces the GPIO sensor with a simulated one, for
	// development hosts without the hardware.
	MockSensor bool
}

// errBadMinutes is returned for a rotation minutes argument that is not
// a positive integer.
var errBadMinutes = errors.New("minutes must be a positive integer")

// ParseRotationMinutes validates the CLI minutes argument and converts
// it to a rotation interval.
func ParseRotationMinutes(arg string) (time.Duration, error) {
	minutes, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", arg, errBadMinutes)
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("%d: %w", minutes, errBadMinutes)
	}

	return time.Duration(minutes) * time.Minute, nil
}

// deps are the external collaborators; tests substitute fakes.
type deps struct {
	runner     proc.Runner
	openSensor func(cfg *config.Config) (sensor.Input, error)
}

// Run starts the selected show variant and blocks until the context is
// canceled or startup fails. Initialization errors (configuration, CLI
// validation, hardware) are returned; steady-state errors are logged and
// the show keeps running.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "scare")

	cfg, err := config.Load(opts.ConfigPath)

	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		logger.Warnf(ctx, "Settings file not found, using built-in defaults: %v", err)

		cfg = config.Default()
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("validate default configuration: %w", err)
		}
	default:
		return fmt.Errorf("load configuration: %w", err)
	}

	configureLogging(cfg.Logging)

	d := &deps{
		runner: proc.ExecRunner{},
		openSensor: func(cfg *config.Config) (sensor.Input, error) {
			if opts.MockSensor {
				logger.Warn(ctx, "Using simulated motion sensor")

				return sensor.NewFake(), nil
			}

			return sensor.OpenGPIO(cfg.GPIO.SensorPin, cfg.GPIO.PinMode, cfg.GPIO.PullMode)
		},
	}

	return run(ctx, cfg, opts, d)
}

// run is the startup sequence behind Run, with collaborators injected.
func run(ctx context.Context, cfg *config.Config, opts *Options, d *deps) error {
	lib := media.NewLibrary(cfg)

	if err := lib.CheckTheme(opts.Theme); err != nil {
		return err
	}

	var rot *rotation.Rotator

	if opts.RotationInterval > 0 {
		var err error

		rot, err = rotation.New(cfg.Themes.Available, opts.Theme, opts.RotationInterval)
		if err != nil {
			return fmt.Errorf("configure rotation: %w", err)
		}

		// With rotation the theme set changes over time; missing assets
		// are reported per switch instead of blocking startup.
		if err := lib.Validate(opts.Theme); err != nil {
			logger.WarnKV(ctx, "Initial theme assets incomplete", "error", err)
		}
	} else if err := lib.Validate(opts.Theme); err != nil {
		return err
	}

	if opts.Recording {
		if err := media.EnsureDir(cfg.Paths.RecordingsDir); err != nil {
			return err
		}

		logger.InfoKV(ctx, "Recordings directory ready", "dir", cfg.Paths.RecordingsDir)
	}

	sess := newSession(cfg, lib, rot, d.runner, opts.Theme, opts.Recording)
	defer sess.Cleanup(ctx)

	sess.ShowImage(ctx, opts.Theme)

	input, err := d.openSensor(cfg)
	if err != nil {
		return fmt.Errorf("initialize sensor: %w", err)
	}

	det := detector.New(input)
	defer func() {
		_ = det.Close()
	}()

	if err := det.Subscribe(edgeLogger()); err != nil {
		return err
	}

	if err := det.Subscribe(sess); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Show starting",
		"theme", opts.Theme,
		"recording", opts.Recording,
		"rotation_interval", opts.RotationInterval.String())

	return det.Start(ctx, cfg.Motion.PollInterval)
}

// configureLogging applies the logging section of the settings.
func configureLogging(cfg config.LoggingConfig) {
	if parsed, ok := logger.ParseLogLevel(cfg.Level); ok {
		logger.SetLevel(parsed)
	}

	if cfg.File != "" || !cfg.Console {
		// Passing a nil level keeps the logger on the shared atomic level.
		logger.SetLogger(logger.NewWithOptions(nil, logger.Options{
			Console:  cfg.Console,
			FilePath: cfg.File,
		}))
	}
}

// edgeLogger records every edge at debug level, independently of the
// scare sequencer.
func edgeLogger() detector.Handler {
	return detector.HandlerFunc(func(ctx context.Context, active bool) error {
		logger.DebugKV(ctx, "Motion edge", "active", active)

		return nil
	})
}
