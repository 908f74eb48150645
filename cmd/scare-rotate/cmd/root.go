package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhowlett/scarebox/internal/config"
	"github.com/dhowlett/scarebox/internal/service/show"
	"github.com/dhowlett/scarebox/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// mockSensor swaps the GPIO sensor for a simulated one.
	mockSensor bool

	// rootCmd represents the base command for the rotating scare variant.
	rootCmd = &cobra.Command{
		Use:   "scare-rotate <theme> <minutes>",
		Short: "Rotate through scare themes on a timer, recording reactions.",
		Long: `Like scare-record, but rotates to a randomly chosen different theme once
<minutes> have elapsed since the last switch. Rotation happens between
scare cycles and never repeats the immediately-previous theme.

<theme> is the starting theme and must be one of the configured themes.
<minutes> must be a positive integer.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			// Validate the rotation interval before anything is loaded or started.
			interval, err := show.ParseRotationMinutes(args[1])
			if err != nil {
				return err
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &show.Options{
				ConfigPath:       configPath,
				Theme:            args[0],
				Recording:        true,
				RotationInterval: interval,
				MockSensor:       mockSensor,
			}

			return show.Run(ctx, options)
		},
	}
)

// Execute runs the scare-rotate CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVar(&mockSensor, "mock", false, "use a simulated motion sensor (no GPIO hardware)")
}
