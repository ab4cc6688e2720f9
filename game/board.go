package game

// Cell represents the content of one board position.
type Cell int8

const (
	Empty  Cell = 0
	Yellow Cell = 1
	Red    Cell = -1
)

// Other returns the piece of the opposing player. Empty maps to itself.
func (c Cell) Other() Cell {
	return -c
}

// Defaults for the classic game: a 6x7 grid needing four in a row.
const (
	DefaultRows      = 6
	DefaultColumns   = 7
	DefaultWinLength = 4
)

// Board is a gravity-fed connect-four grid. Row 0 is the bottom row, so
// a dropped piece lands in the lowest empty cell of its column. Drop is
// the only mutator besides Reset; a rejected drop leaves the board
// exactly as it was.
type Board struct {
	cells     [][]Cell // indexed [row][column], row 0 at the bottom
	rows      int
	columns   int
	winLength int
	moves     int
}

// NewBoard initializes and returns an empty rows x columns board on
// which winLength aligned pieces win. Dimensions are not validated
// here; garbage in, panic out. Callers wanting a playable game keep
// rows and columns positive and winLength at least 2.
func NewBoard(rows, columns, winLength int) *Board {
	b := &Board{
		rows:      rows,
		columns:   columns,
		winLength: winLength,
	}
	b.cells = make([][]Cell, rows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, columns)
	}
	return b
}

// Reset clears every cell and the move counter so the board can host a
// fresh game.
func (b *Board) Reset() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Empty
		}
	}
	b.moves = 0
}

func (b *Board) Rows() int      { return b.rows }
func (b *Board) Columns() int   { return b.columns }
func (b *Board) WinLength() int { return b.winLength }

// Moves returns the number of pieces dropped since the last reset.
func (b *Board) Moves() int {
	return b.moves
}

// At returns the piece at (row, column), row 0 being the bottom row.
func (b *Board) At(row, column int) Cell {
	return b.cells[row][column]
}

// Grid returns a deep copy of the cells, bottom row first. Renderers
// printing top-down have to reverse the row order themselves.
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for r := range b.cells {
		grid[r] = make([]Cell, b.columns)
		copy(grid[r], b.cells[r])
	}
	return grid
}

// LegalColumns flags the columns that still accept a drop: exactly
// those whose top-row cell is empty.
func (b *Board) LegalColumns() []bool {
	mask := make([]bool, b.columns)
	for c := 0; c < b.columns; c++ {
		mask[c] = b.cells[b.rows-1][c] == Empty
	}
	return mask
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return b.moves == b.rows*b.columns
}

// Drop places piece in the lowest empty cell of column and returns the
// landing row. It fails with *IllegalMoveError when the column is out
// of range or already full; nothing is mutated on failure.
func (b *Board) Drop(column int, piece Cell) (int, error) {
	if column < 0 || column >= b.columns {
		return -1, &IllegalMoveError{Column: column, Cause: ErrOutOfRange}
	}
	for row := 0; row < b.rows; row++ {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = piece
			b.moves++
			return row, nil
		}
	}
	return -1, &IllegalMoveError{Column: column, Cause: ErrColumnFull}
}
