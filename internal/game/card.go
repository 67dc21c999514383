package game

import "fmt"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitNames = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitNames) {
		return "?"
	}
	return suitNames[s]
}

// Rank is the position of a card within its suit, 0 (Two) through 12 (Ace).
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return "?"
	}
	return rankNames[r]
}

// Card is one of the 52 cards, identified by its index 0..51.
// Suit is index/13 and rank is index%13.
type Card int

// NewCard builds the card with the given rank and suit.
func NewCard(r Rank, s Suit) Card {
	return Card(int(s)*13 + int(r))
}

func (c Card) Rank() Rank {
	return Rank(int(c) % 13)
}

func (c Card) Suit() Suit {
	return Suit(int(c) / 13)
}

// Value is the card's blackjack value before any ace reduction.
func (c Card) Value() int {
	r := c.Rank()
	switch {
	case r < Ten:
		return int(r) + 2
	case r < Ace:
		return 10
	default:
		return 11
	}
}

// String returns the card as "Rank of Suit", e.g. "Queen of Spades".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank(), c.Suit())
}
