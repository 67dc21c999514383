// Package console is the terminal front end: the startup menu, the
// per-hand table and prompts, and the session loop that plays rounds until
// the player quits.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"blackjack/internal/config"
	"blackjack/internal/game"
	"blackjack/internal/history"
)

type Console struct {
	out     io.Writer
	lines   <-chan inputLine
	cfg     *config.Config
	history history.Repository
	rng     *rand.Rand
	logger  *slog.Logger
}

// New builds a console reading commands from in and drawing on out.
// rng is the process-wide shuffler and is used for every round's deck.
func New(in io.Reader, out io.Writer, cfg *config.Config, repo history.Repository, rng *rand.Rand, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		out:     out,
		lines:   readLines(in),
		cfg:     cfg,
		history: repo,
		rng:     rng,
		logger:  logger,
	}
}

// Run shows the menu and, if asked to, plays rounds until the player quits.
// A nil error means a normal exit.
func (c *Console) Run(ctx context.Context) error {
	c.print(renderBanner())
	c.print(renderRules(c.cfg.DealerStandsOn))
	c.print("")
	fmt.Fprintln(c.out, promptMenu)

	line, err := c.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	switch parseMenuChoice(line) {
	case MenuStart:
		return c.play(ctx)
	case MenuExit:
		return nil
	default:
		c.print(renderError("Invalid selection. Please try again."))
		return nil
	}
}

func (c *Console) play(ctx context.Context) error {
	var stats game.Stats

	for {
		number := stats.Hands + 1
		round := game.NewRound(number, game.NewDeck(c.rng), c,
			game.WithDealerStandsOn(c.cfg.DealerStandsOn),
			game.WithLogger(c.logger),
		)
		if err := round.Deal(); err != nil {
			return fmt.Errorf("round %d: %w", number, err)
		}

		c.print(renderHeader(number, stats))

		res, err := round.Play(ctx, &stats)
		if err != nil {
			if errors.Is(err, game.ErrQuit) {
				c.print("Good Luck! Quitting the game... ")
				c.summary(stats)
				return nil
			}
			if ctx.Err() != nil && errors.Is(err, context.Canceled) {
				c.summary(stats)
				return nil
			}
			return fmt.Errorf("round %d: %w", number, err)
		}

		c.save(res)
		c.print(renderResult(res))

		fmt.Fprintln(c.out, promptPause)
		if _, err := c.readLine(ctx); err != nil {
			c.summary(stats)
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

func (c *Console) save(res game.Result) {
	if c.history == nil {
		return
	}
	if err := c.history.Save(res); err != nil {
		c.logger.Warn("failed to record round", "round", res.Number, "error", err)
	}
}

func (c *Console) summary(stats game.Stats) {
	var recent []history.Entry
	if c.history != nil && c.cfg.HistoryLimit > 0 {
		var err error
		recent, err = c.history.Recent(c.cfg.HistoryLimit)
		if err != nil {
			c.logger.Warn("failed to load round history", "error", err)
		}
	}
	c.print(renderSummary(stats, recent))
}

func (c *Console) print(s string) {
	fmt.Fprintln(c.out, s)
}
