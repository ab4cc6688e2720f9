package env

// Box describes the observation tensor: planes x rows x columns values
// bounded to [Low, High].
type Box struct {
	Low   float64
	High  float64
	Shape [3]int
}

// Discrete describes the action space: column indices 0..N-1.
type Discrete struct {
	N int
}

// ObservationSpace declares the shape adapters should allocate for
// observations: two planes of rows x columns, values within [0, 1].
func (e *Env) ObservationSpace() Box {
	return Box{Low: 0, High: 1, Shape: [3]int{2, e.rows, e.columns}}
}

// ActionSpace declares the discrete action count, one per column.
func (e *Env) ActionSpace() Discrete {
	return Discrete{N: e.columns}
}

// RewardRange bounds the per-step reward.
func (e *Env) RewardRange() (low, high float64) {
	return -1, 1
}
