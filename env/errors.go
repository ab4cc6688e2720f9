package env

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotInProgress is the cause carried by the *game.IllegalMoveError
// returned when Step is called before Reset or after the episode has
// terminated.
var ErrNotInProgress = errors.New("episode is not in progress")

// IllegalOpponentMoveError reports an opponent returning a column that
// is out of range or full. This is a contract violation by the
// opponent's policy, not a valid game event: the controller propagates
// it instead of substituting a fallback move, leaving the episode in
// progress with the agent's move standing.
type IllegalOpponentMoveError struct {
	Column int
}

func (e *IllegalOpponentMoveError) Error() string {
	return fmt.Sprintf("opponent chose illegal column %d", e.Column)
}
