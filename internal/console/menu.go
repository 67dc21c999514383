package console

import (
	"strconv"
	"strings"
)

const (
	MenuStart = 1
	MenuExit  = 2

	promptCommand = "(h)it, (s)tay, or (q)uit: "
	promptMenu    = "Please press 1 to start or 2 to exit the game: "
	promptPause   = "Press enter to continue..."
)

// parseMenuChoice reads the startup choice. Anything that is not an
// integer counts as 0, which is rejected like any other unknown value.
func parseMenuChoice(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0
	}
	return n
}
