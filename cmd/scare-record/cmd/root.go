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

	// rootCmd represents the base command for the recording scare variant.
	rootCmd = &cobra.Command{
		Use:   "scare-record <theme>",
		Short: "Play a themed scare video and record the reaction.",
		Long: `Like scare, but each motion-triggered cycle also records the subject's
reaction with the camera while the scare video plays, then plays the
recording back once both have finished.

Recordings are written to the configured recordings directory with
timestamped names; the directory is created on startup if absent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &show.Options{
				ConfigPath: configPath,
				Theme:      args[0],
				Recording:  true,
				MockSensor: mockSensor,
			}

			return show.Run(ctx, options)
		},
	}
)

// Execute runs the scare-record CLI and exits with non-zero status on error.
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
