// Package opponent ships ready-made implementations of the
// env.Opponent capability: a uniform random player, a scripted
// sequence for tests and demos, a console prompt for humans, a neural
// network policy and a websocket bridge to a remote player.
package opponent

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"connectfour/env"
	"connectfour/game"
)

// Random picks uniformly among the legal columns. The generator is
// injected so games replay under a fixed seed.
func Random(rng *rand.Rand) env.Opponent {
	return func(_ game.Observation, legal []bool) (int, error) {
		candidates := make([]int, 0, len(legal))
		for column, ok := range legal {
			if ok {
				candidates = append(candidates, column)
			}
		}
		if len(candidates) == 0 {
			return 0, errors.New("no legal column to choose from")
		}
		return candidates[rng.Intn(len(candidates))], nil
	}
}

// RandomFactory seeds one generator and shares its stream across the
// episodes it creates opponents for, so a whole run replays under a
// single seed.
func RandomFactory(seed uint64) env.OpponentFactory {
	rng := rand.New(rand.NewSource(seed))
	return func() env.Opponent {
		return Random(rng)
	}
}
