package game

// Plane is a boolean occupancy grid, rows x columns with row 0 at the
// bottom, flagging the cells one player occupies.
type Plane [][]bool

// Observation is the board as seen by one player: Self flags the
// viewer's own pieces and Other the opponent's. The two planes are
// disjoint and together cover exactly the occupied cells, so neither
// side ever sees whose turn it is or any history, just occupancy.
type Observation struct {
	Self  Plane
	Other Plane
}

// Observation projects the board from the viewer's perspective. The
// viewer must be Yellow or Red. A pure read; the board is untouched and
// the returned planes share no memory with it.
func (b *Board) Observation(viewer Cell) Observation {
	self := make(Plane, b.rows)
	other := make(Plane, b.rows)
	for r := 0; r < b.rows; r++ {
		self[r] = make([]bool, b.columns)
		other[r] = make([]bool, b.columns)
		for c := 0; c < b.columns; c++ {
			switch b.cells[r][c] {
			case viewer:
				self[r][c] = true
			case viewer.Other():
				other[r][c] = true
			}
		}
	}
	return Observation{Self: self, Other: other}
}

// Vector flattens the observation into a single slice: the Self plane
// followed by the Other plane, rows bottom-up, each cell 0 or 1. This
// is the 2 x rows x columns encoding networks and wire formats expect.
func (o Observation) Vector() []float64 {
	vec := make([]float64, 0, 2*planeSize(o.Self))
	for _, plane := range []Plane{o.Self, o.Other} {
		for _, row := range plane {
			for _, occupied := range row {
				if occupied {
					vec = append(vec, 1)
				} else {
					vec = append(vec, 0)
				}
			}
		}
	}
	return vec
}

func planeSize(p Plane) int {
	n := 0
	for _, row := range p {
		n += len(row)
	}
	return n
}
