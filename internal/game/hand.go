package game

import (
	"strings"
	"sync"
)

// Hand holds the cards of one participant. The score is never cached;
// every call recomputes it from the current cards.
//
// The lock lets the player's view read the dealer's hand while the dealer
// task is still drawing.
type Hand struct {
	mu    sync.RWMutex
	cards []Card
}

func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, 10),
	}
}

func (h *Hand) Add(card Card) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cards = append(h.cards, card)
}

func (h *Hand) Score() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Score(h.cards)
}

func (h *Hand) IsBust() bool {
	return h.Score() > Blackjack
}

// Cards returns a copy of the cards in the order they were received.
func (h *Hand) Cards() []Card {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cards)
}

// String joins the card descriptions with spaces, in insertion order.
func (h *Hand) String() string {
	return Describe(h.Cards())
}

func Describe(cards []Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
