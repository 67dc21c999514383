package game

import (
	"context"
	"errors"
	"log/slog"
)

// DealerPolicy hits while the score is below StandOn.
type DealerPolicy struct {
	StandOn int
}

func (dp DealerPolicy) Play(ctx context.Context, p *Participant, deck *Deck) error {
	standOn := dp.StandOn
	if standOn <= 0 {
		standOn = DealerStandsOn
	}

	for p.Score() < standOn {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := p.Draw(deck); err != nil {
			return err
		}
	}
	return nil
}

// Table is what the player sees when asked for a command. The dealer's
// first card stays hidden.
type Table struct {
	DealerVisible []Card
	DealerHidden  int
	Player        []Card
	PlayerScore   int
}

// Prompter is the interactive boundary of the player's turn.
type Prompter interface {
	// Choose shows the table and returns the raw command typed by the player.
	Choose(ctx context.Context, table Table) (string, error)
	// Invalid reports a rejected command before the next prompt.
	Invalid(input string, err error)
}

// InteractivePolicy runs the player's turn: hit, stay or quit until the
// player stands, busts or quits.
type InteractivePolicy struct {
	Prompter Prompter
	Dealer   *Participant
	Logger   *slog.Logger

	state HumanState
}

func NewInteractivePolicy(prompter Prompter, dealer *Participant, logger *slog.Logger) *InteractivePolicy {
	if logger == nil {
		logger = slog.Default()
	}
	return &InteractivePolicy{
		Prompter: prompter,
		Dealer:   dealer,
		Logger:   logger,
		state:    StateAwaitingInput,
	}
}

// State is the turn state reached so far.
func (ip *InteractivePolicy) State() HumanState {
	return ip.state
}

func (ip *InteractivePolicy) Play(ctx context.Context, p *Participant, deck *Deck) error {
	ip.state = StateAwaitingInput

	for ip.state == StateAwaitingInput {
		if p.Hand.IsBust() {
			ip.state = StateBusted
			break
		}

		input, err := ip.Prompter.Choose(ctx, ip.table(p))
		if err != nil {
			if errors.Is(err, ErrQuit) {
				ip.state = StateQuit
			}
			return err
		}

		cmd, err := ParseCommand(input)
		if err != nil {
			ip.Prompter.Invalid(input, err)
			continue
		}

		switch cmd {
		case CommandHit:
			card, err := p.Draw(deck)
			if err != nil {
				return err
			}
			ip.Logger.Debug("player hit", "card", card.String(), "score", p.Score())
		case CommandStay:
			ip.state = StateStood
		case CommandQuit:
			ip.state = StateQuit
			return ErrQuit
		}
	}

	ip.Logger.Debug("player turn done", "state", ip.state.String(), "score", p.Score())
	return nil
}

func (ip *InteractivePolicy) table(p *Participant) Table {
	t := Table{
		Player:      p.Hand.Cards(),
		PlayerScore: p.Score(),
	}
	if ip.Dealer != nil {
		dealer := ip.Dealer.Hand.Cards()
		if len(dealer) > 0 {
			t.DealerHidden = 1
			t.DealerVisible = dealer[1:]
		}
	}
	return t
}
