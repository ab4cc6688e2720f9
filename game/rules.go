package game

// The four axes a winning run can lie on, as (row, column) steps:
// vertical, horizontal, rising diagonal, falling diagonal.
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// WinningAt reports whether the piece at (row, column) completes a run
// of at least winLength along any axis. Call it with the coordinates of
// the piece just dropped; the result for an empty cell is meaningless.
// Each axis is scanned outward from the anchor in both directions, so a
// check costs O(winLength) per axis rather than a full-board scan.
func (b *Board) WinningAt(row, column int) bool {
	piece := b.cells[row][column]
	for _, axis := range axes {
		run := 1 +
			b.runLength(row, column, axis[0], axis[1], piece) +
			b.runLength(row, column, -axis[0], -axis[1], piece)
		if run >= b.winLength {
			return true
		}
	}
	return false
}

// runLength counts consecutive cells holding piece, walking from
// (row, column) exclusive in steps of (dr, dc) until the board edge or
// a different cell.
func (b *Board) runLength(row, column, dr, dc int, piece Cell) int {
	count := 0
	for r, c := row+dr, column+dc; r >= 0 && r < b.rows && c >= 0 && c < b.columns && b.cells[r][c] == piece; r, c = r+dr, c+dc {
		count++
	}
	return count
}
