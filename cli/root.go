package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridbox",
	Short: "Render columnar data as interactive HTML tables",
	Long: `Gridbox renders tabular data as interactive HTML tables backed by a
JavaScript grid library (datatables.net or ag-grid).

Large tables are downsampled before rendering so the generated page
stays small: row, column and byte limits are applied and the output
notes when the displayed table is a subset of the input.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteWithContext runs the root command with context carrying the logger
func ExecuteWithContext(ctx context.Context) error {
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a context carrying the logger for subcommands
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func loggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a YAML config file")
}
