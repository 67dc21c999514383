package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Result summarizes a resolved round.
type Result struct {
	Number      int
	Outcome     Outcome
	PlayerScore int
	DealerScore int
	PlayerCards []Card
	DealerCards []Card
}

// Round is one hand of play: a fresh deck, the dealer and the player.
type Round struct {
	Number int
	Deck   *Deck
	Dealer *Participant
	Player *Participant

	logger *slog.Logger
}

type RoundOption func(*Round)

// WithDealerStandsOn overrides the dealer threshold.
func WithDealerStandsOn(score int) RoundOption {
	return func(r *Round) {
		r.Dealer.Policy = DealerPolicy{StandOn: score}
	}
}

func WithLogger(logger *slog.Logger) RoundOption {
	return func(r *Round) {
		r.logger = logger
		if ip, ok := r.Player.Policy.(*InteractivePolicy); ok {
			ip.Logger = logger
		}
	}
}

// WithPlayerPolicy replaces the interactive policy, mostly for automated play.
func WithPlayerPolicy(policy TurnPolicy) RoundOption {
	return func(r *Round) {
		r.Player.Policy = policy
	}
}

// NewRound sets up a round over deck. The player is driven by prompter and
// the dealer hits below DealerStandsOn unless an option says otherwise.
func NewRound(number int, deck *Deck, prompter Prompter, opts ...RoundOption) *Round {
	dealer := NewParticipant("dealer", DealerPolicy{StandOn: DealerStandsOn})
	player := NewParticipant("player", nil)
	player.Policy = NewInteractivePolicy(prompter, dealer, nil)

	r := &Round{
		Number: number,
		Deck:   deck,
		Dealer: dealer,
		Player: player,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Deal gives two cards to each participant, alternating dealer first.
func (r *Round) Deal() error {
	for i := 0; i < 2; i++ {
		for _, p := range []*Participant{r.Dealer, r.Player} {
			card, err := p.Draw(r.Deck)
			if err != nil {
				return fmt.Errorf("opening deal: %w", err)
			}
			r.logger.Debug("dealt", "round", r.Number, "to", p.Name, "card", card.String())
		}
	}
	return nil
}

// Play runs the dealer and player turns concurrently, waits for both and
// resolves the round into stats. ErrQuit is returned as is; any other turn
// failure is wrapped in ErrTurnFailed. Stats are untouched on error.
func (r *Round) Play(ctx context.Context, stats *Stats) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(r.turn(gctx, r.Dealer))
	g.Go(r.turn(gctx, r.Player))

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrQuit) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %w", ErrTurnFailed, err)
	}

	res := Result{
		Number:      r.Number,
		PlayerScore: r.Player.Score(),
		DealerScore: r.Dealer.Score(),
		PlayerCards: r.Player.Hand.Cards(),
		DealerCards: r.Dealer.Hand.Cards(),
	}
	res.Outcome = Resolve(res.PlayerScore, res.DealerScore)
	stats.Record(res.Outcome)

	r.logger.Debug("round resolved",
		"round", r.Number,
		"outcome", res.Outcome.String(),
		"player", res.PlayerScore,
		"dealer", res.DealerScore,
	)
	return res, nil
}

func (r *Round) turn(ctx context.Context, p *Participant) func() error {
	return func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("%s turn panicked: %v", p.Name, rec)
			}
		}()
		if err := p.TakeTurn(ctx, r.Deck); err != nil {
			if errors.Is(err, ErrQuit) {
				return err
			}
			return fmt.Errorf("%s turn: %w", p.Name, err)
		}
		return nil
	}
}
