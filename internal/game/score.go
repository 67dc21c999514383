package game

const (
	// Blackjack is the highest score that does not bust.
	Blackjack = 21

	// DealerStandsOn is the default dealer threshold: hit while below it.
	DealerStandsOn = 17
)

// Score computes the blackjack total of cards. Aces count 11 and are
// reduced to 1, one at a time, only while the total is over 21.
func Score(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.Value()
		if card.Rank() == Ace {
			aces++
		}
	}

	for score > Blackjack && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func IsBust(cards []Card) bool {
	return Score(cards) > Blackjack
}
