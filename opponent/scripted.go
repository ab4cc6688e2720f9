package opponent

import (
	"github.com/pkg/errors"

	"connectfour/env"
	"connectfour/game"
)

// Scripted replays a fixed column sequence, one entry per query, and
// fails once the script runs out. Useful wherever a fully predictable
// opponent is needed.
func Scripted(columns ...int) env.Opponent {
	next := 0
	return func(_ game.Observation, _ []bool) (int, error) {
		if next >= len(columns) {
			return 0, errors.Errorf("script exhausted after %d moves", len(columns))
		}
		column := columns[next]
		next++
		return column, nil
	}
}

// ScriptedFactory replays the same script from the top in every
// episode.
func ScriptedFactory(columns ...int) env.OpponentFactory {
	return func() env.Opponent {
		return Scripted(columns...)
	}
}
