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

	// rootCmd represents the base command for the simple scare variant.
	rootCmd = &cobra.Command{
		Use:   "scare <theme>",
		Short: "Play a themed scare video when motion is detected.",
		Long: `Displays the theme's start image on the framebuffer and plays the theme's
scare video every time the motion sensor reports a rising edge.

<theme> must be one of the themes configured in the settings file; the
theme's start image and scare video must both exist in the media
directory. With a missing settings file the built-in defaults are used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &show.Options{
				ConfigPath: configPath,
				Theme:      args[0],
				MockSensor: mockSensor,
			}

			return show.Run(ctx, options)
		},
	}
)

// Execute runs the scare CLI and exits with non-zero status on error.
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
