// Package render prints boards for humans. It sits outside the rules
// core and only ever reads the grid.
package render

import (
	"fmt"
	"io"

	"connectfour/game"
)

// Mode selects a render target.
type Mode string

// ModeHuman writes the board as text, one line per row. It is the only
// supported mode.
const ModeHuman Mode = "human"

// Symbols maps the three cell states to their printed characters.
type Symbols struct {
	Empty  string
	Yellow string
	Red    string
}

// DefaultSymbols is the classic emoji trio.
var DefaultSymbols = Symbols{Empty: "⚪", Yellow: "🟡", Red: "🔴"}

// InvalidRenderModeError reports a render target this package does not
// support.
type InvalidRenderModeError struct {
	Mode Mode
}

func (e *InvalidRenderModeError) Error() string {
	return fmt.Sprintf("invalid render mode %q", string(e.Mode))
}

// Render writes the board to w with the top row first. Storage keeps
// row 0 at the bottom, so rows are printed in reverse to read the way
// the physical game stands.
func Render(w io.Writer, b *game.Board, mode Mode, symbols Symbols) error {
	if mode != ModeHuman {
		return &InvalidRenderModeError{Mode: mode}
	}
	grid := b.Grid()
	for row := len(grid) - 1; row >= 0; row-- {
		for _, cell := range grid[row] {
			var symbol string
			switch cell {
			case game.Yellow:
				symbol = symbols.Yellow
			case game.Red:
				symbol = symbols.Red
			default:
				symbol = symbols.Empty
			}
			if _, err := fmt.Fprint(w, symbol); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
