package game

import "errors"

var (
	// ErrEmptyDeck is returned when a card is dealt from an exhausted deck.
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrInvalidInput is returned for a command outside h, s and q.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQuit signals that the player asked to leave the game.
	// It ends the whole session, not only the current round.
	ErrQuit = errors.New("player quit")

	// ErrTurnFailed wraps any failure of a turn task other than ErrQuit.
	ErrTurnFailed = errors.New("turn failed")
)
