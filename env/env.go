// Package env runs connect-four episodes the way reinforcement
// learning frameworks expect: the caller is the agent playing Yellow,
// a pluggable Opponent plays Red, and every Step resolves one full
// exchange of moves with a reward from the agent's perspective.
package env

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"connectfour/game"
)

// State tracks where the controller is in an episode's lifecycle.
type State int8

const (
	NotStarted State = iota
	InProgress
	Terminated
)

// StepResult is what one Step hands back: the agent-perspective
// observation plus the usual step fields. Truncated is always false
// since episodes only end by game outcome, and Info is always nil;
// both exist for adapters expecting the five-field step contract.
type StepResult struct {
	Observation game.Observation
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        map[string]any
}

// Env alternates turns between the calling agent and an opponent on
// top of a game.Board. One Env hosts one episode at a time; each Reset
// discards the previous episode entirely. Not safe for concurrent use.
type Env struct {
	rows      int
	columns   int
	winLength int
	factory   OpponentFactory
	rng       *rand.Rand

	board    *game.Board
	opponent Opponent
	state    State
	outcome  game.Outcome
}

// Option configures an Env on construction.
type Option func(e *Env)

// WithRows overrides the board height.
func WithRows(rows int) Option {
	return func(e *Env) { e.rows = rows }
}

// WithColumns overrides the board width.
func WithColumns(columns int) Option {
	return func(e *Env) { e.columns = columns }
}

// WithWinLength overrides the run length needed to win.
func WithWinLength(winLength int) Option {
	return func(e *Env) { e.winLength = winLength }
}

// WithRand injects the generator behind the who-opens coin flip. Tests
// pass a seeded source for reproducible episodes.
func WithRand(rng *rand.Rand) Option {
	return func(e *Env) { e.rng = rng }
}

// New builds an episode controller that draws a fresh opponent from
// factory at every reset. The default board is the classic 6x7 with
// four to win; dimension problems are collected and reported together.
func New(factory OpponentFactory, opts ...Option) (*Env, error) {
	if factory == nil {
		return nil, errors.New("opponent factory is required")
	}
	e := &Env{
		rows:      game.DefaultRows,
		columns:   game.DefaultColumns,
		winLength: game.DefaultWinLength,
		factory:   factory,
		state:     NotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	var errs error
	if e.rows < 1 {
		errs = multierror.Append(errs, errors.Errorf("rows must be at least 1, got %d", e.rows))
	}
	if e.columns < 1 {
		errs = multierror.Append(errs, errors.Errorf("columns must be at least 1, got %d", e.columns))
	}
	if e.winLength < 2 {
		errs = multierror.Append(errs, errors.Errorf("win length must be at least 2, got %d", e.winLength))
	}
	if errs != nil {
		return nil, errs
	}
	return e, nil
}

// Reset starts a new episode: a fresh board, a fresh opponent from the
// factory, and a coin flip on who opens. When the opponent opens, its
// move goes through the same legality and win checks as any later
// turn. The returned observation is from the agent's perspective.
func (e *Env) Reset() (game.Observation, error) {
	e.board = game.NewBoard(e.rows, e.columns, e.winLength)
	e.opponent = e.factory()
	e.state = InProgress
	e.outcome = game.Ongoing

	if e.rng.Intn(2) == 0 {
		won, err := e.opponentTurn()
		if err != nil {
			e.state = NotStarted
			return game.Observation{}, err
		}
		if won {
			// Unreachable once winLength is at least 2, since a lone
			// opening piece cannot complete a run.
			e.terminate(game.RedWins)
		}
	}
	return e.board.Observation(game.Yellow), nil
}

// Step plays one full exchange: the agent drops into column and, if
// the episode is still going, the opponent replies. The reward is from
// the agent's perspective: +1 for a win, -1 for a loss, 0 otherwise.
// The agent's win and draw checks run before the opponent is
// consulted, so a winning move is never answered and the opponent
// never sees a finished game.
func (e *Env) Step(column int) (StepResult, error) {
	if e.state != InProgress {
		return StepResult{}, &game.IllegalMoveError{Column: column, Cause: ErrNotInProgress}
	}

	row, err := e.board.Drop(column, game.Yellow)
	if err != nil {
		return StepResult{}, err
	}
	if e.board.WinningAt(row, column) {
		e.terminate(game.YellowWins)
		return e.result(1), nil
	}
	if e.board.Full() {
		e.terminate(game.Draw)
		return e.result(0), nil
	}

	won, err := e.opponentTurn()
	if err != nil {
		return StepResult{}, err
	}
	if won {
		e.terminate(game.RedWins)
		return e.result(-1), nil
	}
	if e.board.Full() {
		e.terminate(game.Draw)
		return e.result(0), nil
	}
	return e.result(0), nil
}

// opponentTurn queries the opponent with its own-perspective
// observation and the current mask, validates the returned column,
// applies it and reports whether it won. The range and mask checks run
// before the drop, so an illegal reply leaves the board exactly as the
// opponent saw it.
func (e *Env) opponentTurn() (bool, error) {
	legal := e.board.LegalColumns()
	column, err := e.opponent(e.board.Observation(game.Red), legal)
	if err != nil {
		return false, errors.Wrap(err, "querying opponent")
	}
	if column < 0 || column >= e.columns || !legal[column] {
		return false, &IllegalOpponentMoveError{Column: column}
	}
	row, err := e.board.Drop(column, game.Red)
	if err != nil {
		return false, &IllegalOpponentMoveError{Column: column}
	}
	return e.board.WinningAt(row, column), nil
}

func (e *Env) terminate(outcome game.Outcome) {
	e.state = Terminated
	e.outcome = outcome
}

func (e *Env) result(reward float64) StepResult {
	return StepResult{
		Observation: e.board.Observation(game.Yellow),
		Reward:      reward,
		Terminated:  e.state == Terminated,
	}
}

// ActionMask flags the columns the agent may legally play right now.
// All false before the first reset.
func (e *Env) ActionMask() []bool {
	if e.board == nil {
		return make([]bool, e.columns)
	}
	return e.board.LegalColumns()
}

// State reports the episode lifecycle position.
func (e *Env) State() State {
	return e.state
}

// Outcome reports how the episode ended; Ongoing while play continues.
func (e *Env) Outcome() game.Outcome {
	return e.outcome
}

// Board exposes the live board for read-only collaborators such as
// renderers. Nil before the first reset.
func (e *Env) Board() *game.Board {
	return e.board
}
