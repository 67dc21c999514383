package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"blackjack/internal/game"
	"blackjack/internal/history"
)

const hiddenCard = "**"

func renderBanner() string {
	s, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgLightWhite.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err != nil {
		return "Blackjack"
	}
	return s
}

func renderRules(standsOn int) string {
	return strings.Join([]string{
		"All the standard rules apply. " + fmt.Sprintf("House stays at %d. Do not exceed %d.", standsOn, game.Blackjack),
		"Cards 2-10 are worth their number value. Face cards are worth 10. Ace is worth 1 or 11.",
	}, "\n")
}

func renderHeader(number int, stats game.Stats) string {
	return pterm.DefaultBox.
		WithTitle(pterm.LightCyan("Hand #" + strconv.Itoa(number))).
		WithTitleTopLeft().
		Sprintf("Wins: %d\nLosses: %d\nTies: %d", stats.Wins, stats.Losses, stats.Ties)
}

// renderTable is the player's view: the dealer's first card stays hidden.
func renderTable(t game.Table) string {
	dealer := make([]string, 0, t.DealerHidden+len(t.DealerVisible))
	for i := 0; i < t.DealerHidden; i++ {
		dealer = append(dealer, hiddenCard)
	}
	for _, c := range t.DealerVisible {
		dealer = append(dealer, c.String())
	}

	return fmt.Sprintf("Dealer's Hand =\n%s\nPlayer's Hand = %d\n%s",
		strings.Join(dealer, " "), t.PlayerScore, game.Describe(t.Player))
}

func renderResult(res game.Result) string {
	var headline string
	switch {
	case res.PlayerScore > game.Blackjack:
		headline = pterm.Error.Sprint("You busted! Dealer wins.")
	case res.DealerScore > game.Blackjack:
		headline = pterm.Success.Sprint("Dealer busted! You win!")
	case res.Outcome == game.OutcomePush:
		headline = pterm.Warning.Sprint("Tie!")
	case res.Outcome == game.OutcomePlayerWin:
		headline = pterm.Success.Sprint("You win!")
	default:
		headline = pterm.Error.Sprint("Dealer wins.")
	}

	body := fmt.Sprintf("Dealer's Hand was: %d\n%s\nPlayer's Hand was: %d\n%s",
		res.DealerScore, game.Describe(res.DealerCards),
		res.PlayerScore, game.Describe(res.PlayerCards))

	return headline + "\n" + pterm.DefaultBox.WithTitle("Hand #"+strconv.Itoa(res.Number)).Sprint(body)
}

func renderSummary(stats game.Stats, recent []history.Entry) string {
	var sb strings.Builder
	sb.WriteString(pterm.DefaultBox.WithTitle(pterm.LightGreen("Session")).Sprintf(
		"Hands: %d\nWins: %d (%.1f%%)\nLosses: %d\nTies: %d",
		stats.Hands, stats.Wins, stats.WinRate(), stats.Losses, stats.Ties))

	if len(recent) == 0 {
		return sb.String()
	}

	data := pterm.TableData{{"Hand", "Result", "Player", "Dealer"}}
	for _, e := range recent {
		data = append(data, []string{
			strconv.Itoa(e.Number),
			e.Outcome,
			strconv.Itoa(e.PlayerScore),
			strconv.Itoa(e.DealerScore),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return sb.String()
	}
	sb.WriteString("\n")
	sb.WriteString(table)
	return sb.String()
}

func renderError(msg string) string {
	return pterm.Error.Sprint(msg)
}
