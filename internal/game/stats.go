package game

// Outcome is the result of a round from the player's point of view.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "win"
	case OutcomeDealerWin:
		return "loss"
	case OutcomePush:
		return "tie"
	default:
		return "none"
	}
}

// Resolve classifies a finished round. The checks run in order: player
// bust, dealer bust, equal scores, higher score.
func Resolve(playerScore, dealerScore int) Outcome {
	switch {
	case playerScore > Blackjack:
		return OutcomeDealerWin
	case dealerScore > Blackjack:
		return OutcomePlayerWin
	case playerScore == dealerScore:
		return OutcomePush
	case playerScore > dealerScore:
		return OutcomePlayerWin
	default:
		return OutcomeDealerWin
	}
}

// Stats are the session counters. The zero value is a fresh session.
type Stats struct {
	Hands  int
	Wins   int
	Losses int
	Ties   int
}

// Record counts one finished hand and exactly one of win, loss or tie.
// OutcomeNone and unknown values are not finished hands and are ignored.
func (s *Stats) Record(o Outcome) {
	switch o {
	case OutcomePlayerWin:
		s.Wins++
	case OutcomeDealerWin:
		s.Losses++
	case OutcomePush:
		s.Ties++
	default:
		return
	}
	s.Hands++
}

// WinRate is the percentage of recorded hands the player won.
func (s Stats) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands) * 100
}
