package env

import "connectfour/game"

// Opponent chooses a column given the board from its own perspective
// and the mask of columns that still accept a piece. Implementations
// may block, a console or remote opponent waits on input, and the
// controller calls them synchronously. The error return is for the
// opponent's own failures (closed input, dead connection); a
// well-formed but illegal column is reported by the controller as
// *IllegalOpponentMoveError instead.
type Opponent func(obs game.Observation, legal []bool) (int, error)

// OpponentFactory produces a fresh Opponent at every episode reset, so
// stateful policies start each game clean.
type OpponentFactory func() Opponent
