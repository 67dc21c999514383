package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"blackjack/internal/game"
)

// inputLine is one line of input, or the read error that ended the input.
type inputLine struct {
	text string
	err  error
}

// readLines feeds lines from r into a channel that is closed once input
// ends, so reads can be abandoned when the context ends. Lines of any length
// are delivered whole. A read failure other than EOF is sent before closing.
func readLines(r io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			text, err := br.ReadString('\n')
			if text != "" {
				lines <- inputLine{text: strings.TrimRight(text, "\r\n")}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
				}
				return
			}
		}
	}()
	return lines
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// Choose implements game.Prompter. End of input is treated as quitting.
func (c *Console) Choose(ctx context.Context, table game.Table) (string, error) {
	c.print(renderTable(table))
	fmt.Fprint(c.out, promptCommand)

	line, err := c.readLine(ctx)
	if errors.Is(err, io.EOF) {
		return "", game.ErrQuit
	}
	return line, err
}

func (c *Console) Invalid(input string, err error) {
	c.logger.Debug("rejected command", "error", err)
	c.print(renderError("Error: Please Try Again!"))
}
