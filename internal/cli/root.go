// Package cli defines the cobra command tree for tripctl, a headless client
// for the remote trip service. Every command runs the same core the browser
// editor uses: gateway → models → projection/presenters.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Edit a trip itinerary from the command line",
		Long:          "A headless client for the trip service. List, add, edit, favorite, and delete trip points, or render the full board the way the browser editor would.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListCmd(),
		newBoardCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newFavoriteCmd(),
		newSummaryCmd(),
	)
	return root
}

// newLogger builds the process logger from the configured level.
// Shared by every command; structured JSON goes to stderr so command output
// stays clean on stdout.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
