package opponent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"connectfour/env"
	"connectfour/game"
)

// Console prompts a human on out and reads their column from in, one
// line per move. The reply must be a bare integer; anything else is an
// opponent failure, not an illegal move.
func Console(in io.Reader, out io.Writer) env.Opponent {
	scanner := bufio.NewScanner(in)
	return func(_ game.Observation, _ []bool) (int, error) {
		fmt.Fprint(out, "Enter your move: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, errors.Wrap(err, "reading move")
			}
			return 0, errors.New("input closed before a move was entered")
		}
		text := strings.TrimSpace(scanner.Text())
		column, err := strconv.Atoi(text)
		if err != nil {
			return 0, errors.Wrapf(err, "parsing move %q", text)
		}
		return column, nil
	}
}

// ConsoleFactory reuses the same reader across episodes so a human can
// keep playing on one terminal session.
func ConsoleFactory(in io.Reader, out io.Writer) env.OpponentFactory {
	pick := Console(in, out)
	return func() env.Opponent {
		return pick
	}
}
