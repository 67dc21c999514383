package game

import (
	"math/rand"
	"sync"
)

// Deck is a shuffled 52-card deck shared by both participants of a round.
// All access goes through the mutex; Deal is the only way to take cards out.
type Deck struct {
	mu    sync.Mutex
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds every card exactly once and shuffles them with rng.
// rng is owned by the caller and is not reseeded here.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}

	for i := 0; i < DeckSize; i++ {
		d.cards = append(d.cards, Card(i))
	}

	d.Shuffle()
	return d
}

// Shuffle re-randomizes the cards still in the deck.
func (d *Deck) Shuffle() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. It returns ErrEmptyDeck once all
// 52 cards are gone.
func (d *Deck) Deal() (Card, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}

	top := len(d.cards) - 1
	card := d.cards[top]
	d.cards = d.cards[:top]
	return card, nil
}

func (d *Deck) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cards)
}
