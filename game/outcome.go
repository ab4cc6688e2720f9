package game

// Outcome represents how a game ended, if it has.
type Outcome int8

const (
	Ongoing Outcome = iota
	YellowWins
	RedWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case YellowWins:
		return "yellow wins"
	case RedWins:
		return "red wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o != Ongoing
}
