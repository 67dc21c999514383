package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardRankAndSuit(t *testing.T) {
	tests := []struct {
		name string
		card Card
		rank Rank
		suit Suit
		want string
	}{
		{name: "first card", card: 0, rank: Two, suit: Hearts, want: "2 of Hearts"},
		{name: "ace of hearts", card: 12, rank: Ace, suit: Hearts, want: "Ace of Hearts"},
		{name: "two of diamonds", card: 13, rank: Two, suit: Diamonds, want: "2 of Diamonds"},
		{name: "ten of clubs", card: 34, rank: Ten, suit: Clubs, want: "10 of Clubs"},
		{name: "last card", card: 51, rank: Ace, suit: Spades, want: "Ace of Spades"},
		{name: "queen of spades", card: 49, rank: Queen, suit: Spades, want: "Queen of Spades"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.card.Rank())
			assert.Equal(t, tt.suit, tt.card.Suit())
			assert.Equal(t, tt.want, tt.card.String())
			assert.Equal(t, tt.card, NewCard(tt.rank, tt.suit))
		})
	}
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Two, 2}, {Three, 3}, {Four, 4}, {Five, 5}, {Six, 6}, {Seven, 7},
		{Eight, 8}, {Nine, 9}, {Ten, 10}, {Jack, 10}, {Queen, 10}, {King, 10}, {Ace, 11},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			for s := Hearts; s <= Spades; s++ {
				assert.Equal(t, tt.want, NewCard(tt.rank, s).Value())
			}
		})
	}
}
