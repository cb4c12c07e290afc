// Package cli implements the atlasgen command-line interface.
//
// The CLI reads a TOML manifest describing the pages and entries of a
// texture atlas, bakes it with the atlas package, and writes the resulting
// page images plus a texcoord index to an output directory. It is built
// using cobra and logs via the charmbracelet/log library; --verbose (-v)
// enables debug-level logging, including the atlas package's own
// diagnostics.
package cli

import (
	"context"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	atlas "github.com/GossiperLoturot/image-atlas"
)

// loggerKey carries the root command's logger through the command context.
type loggerKey struct{}

// cmdLogger returns the logger installed by Execute, or the charm default
// when the command runs outside it.
func cmdLogger(cmd *cobra.Command) *charmlog.Logger {
	if l, ok := cmd.Context().Value(loggerKey{}).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// Execute runs the atlasgen CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (to stderr)
//   - With --verbose (-v): debug level, including atlas package diagnostics
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "atlasgen",
		Short:        "atlasgen bakes texture atlases from image batches",
		Long:         `atlasgen packs a batch of images into shared texture pages, optionally with per-page mip map pyramids, and writes the pages plus per-entry texcoords for use in content pipelines.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			if verbose {
				// Route the atlas package's slog output through the CLI logger.
				atlas.SetLogger(slog.New(logger))
			}
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())

	return root.ExecuteContext(context.Background())
}
