package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/database"
	"blackjack/internal/history"
	"blackjack/internal/random"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "blackjack: %v\n", err)
		os.Exit(1)
	}
}

// run plays one session. Fatal errors are returned, not logged; main
// reports them.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(errOut, cfg.LogLevel)

	db, err := database.NewMemory()
	if err != nil {
		return fmt.Errorf("failed to open round history: %w", err)
	}
	defer db.Close()

	rng, seed, err := random.NewRand(cfg.Seed)
	if err != nil {
		return err
	}
	logger.Debug("deck shuffler seeded", "seed", seed)

	c := console.New(in, out, cfg, history.NewRepository(db.DB), rng, logger)
	return c.Run(ctx)
}

// newLogger routes slog through the pterm logger on w, normally stderr, so
// records do not interleave with the table on stdout.
func newLogger(w io.Writer, level string) *slog.Logger {
	pl := pterm.DefaultLogger.WithWriter(w).WithLevel(logLevel(level))
	return slog.New(pterm.NewSlogHandler(pl))
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}
