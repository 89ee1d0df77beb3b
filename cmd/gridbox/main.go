package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/TFMV/gridbox/cli"
)

func main() {
	logger := setupLogger()

	ctx := cli.WithLogger(context.Background(), logger)
	if err := cli.ExecuteWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// setupLogger initializes zerolog with console output on stderr
func setupLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if s := os.Getenv("GRIDBOX_LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
