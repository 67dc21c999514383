package game

import (
	"context"
	"fmt"
	"strings"
)

// HumanState is the state of the player's turn.
type HumanState int

const (
	StateAwaitingInput HumanState = iota
	StateBusted
	StateStood
	StateQuit
)

func (s HumanState) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting-input"
	case StateBusted:
		return "busted"
	case StateStood:
		return "stood"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one of the player's per-turn choices.
type Command byte

const (
	CommandHit  Command = 'h'
	CommandStay Command = 's'
	CommandQuit Command = 'q'
)

// ParseCommand accepts a single lower-case h, s or q, ignoring surrounding
// whitespace.
func ParseCommand(input string) (Command, error) {
	in := strings.TrimSpace(input)
	if len(in) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}

	switch c := Command(in[0]); c {
	case CommandHit, CommandStay, CommandQuit:
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInput, input)
}

// TurnPolicy decides when a participant draws. Play returns once the turn
// has reached a terminal state.
type TurnPolicy interface {
	Play(ctx context.Context, p *Participant, deck *Deck) error
}

// Participant is the dealer or the player: one hand plus the policy that
// drives its turn.
type Participant struct {
	Name   string
	Hand   *Hand
	Policy TurnPolicy
}

func NewParticipant(name string, policy TurnPolicy) *Participant {
	return &Participant{
		Name:   name,
		Hand:   NewHand(),
		Policy: policy,
	}
}

// Draw deals one card from deck into the participant's hand.
func (p *Participant) Draw(deck *Deck) (Card, error) {
	card, err := deck.Deal()
	if err != nil {
		return 0, fmt.Errorf("%s draw: %w", p.Name, err)
	}
	p.Hand.Add(card)
	return card, nil
}

func (p *Participant) Score() int {
	return p.Hand.Score()
}

func (p *Participant) TakeTurn(ctx context.Context, deck *Deck) error {
	return p.Policy.Play(ctx, p, deck)
}
