// Package engine drives complete Kalah games between two agents.
package engine

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"kalah/game"
	"kalah/searcher"
)

// MaxMoves caps a single game as a safety limit.
const MaxMoves = 500

// MoveCallback is invoked after every applied move with the resulting state
// and the pit that was played. Used by external consumers such as
// visualization; the engine itself does not depend on it.
type MoveCallback func(state *game.State, move int)

// Result records the outcome of one completed game. Winner is nil on a
// draw. Scores are the finalized store totals.
type Result struct {
	Winner     *game.Player
	SouthScore int
	NorthScore int
	Moves      int
	History    []game.Move
}

// Engine plays games on boards of a fixed configuration. A zero value is
// not usable; construct with New.
type Engine struct {
	pitsPerRow     int
	countersPerPit int
	callback       MoveCallback
}

// New creates an engine. Non-positive parameters fall back to the standard
// 6-pit, 4-counter board.
func New(pitsPerRow, countersPerPit int) *Engine {
	if pitsPerRow <= 0 {
		pitsPerRow = game.DefaultPitsPerRow
	}
	if countersPerPit <= 0 {
		countersPerPit = game.DefaultCountersPerPit
	}
	return &Engine{pitsPerRow: pitsPerRow, countersPerPit: countersPerPit}
}

// SetMoveCallback registers a callback invoked after each applied move.
func (e *Engine) SetMoveCallback(callback MoveCallback) {
	e.callback = callback
}

// PlayGame runs a full game between the two agents, South moving first.
// Agent failures and illegal choices are absorbed by substituting the first
// legal move, so a game always completes within the move cap.
func (e *Engine) PlayGame(south, north searcher.Agent, verbose bool) Result {
	state := game.NewState(e.pitsPerRow, e.countersPerPit)
	agents := [2]searcher.Agent{south, north}
	moves := 0

	if verbose {
		log.Info().Msgf("starting game\n%v", state.Board)
	}

	for !state.IsTerminal() && moves < MaxMoves {
		legal := state.LegalMoves()
		if len(legal) == 0 {
			break
		}

		move, err := agents[state.CurrentPlayer].SelectMove(state)
		if err != nil {
			log.Warn().Err(err).Msgf("player %v agent failed, using first legal move", state.CurrentPlayer)
			move = legal[0]
		} else if !slices.Contains(legal, move) {
			log.Warn().Msgf("player %v chose illegal pit %d, using first legal move", state.CurrentPlayer, move)
			move = legal[0]
		}

		next, err := state.Play(move)
		if err != nil {
			// The move was just validated against the legal set.
			panic(err)
		}
		state = next
		moves++

		if e.callback != nil {
			e.callback(state, move)
		}
		if verbose && moves%10 == 0 {
			log.Info().Msgf("move %d: %v to play\n%v", moves, state.CurrentPlayer, state.Board)
		}
	}

	final := game.FinalizeGame(state.Board)
	winner := game.Winner(state.Board)

	if verbose {
		name := "draw"
		if winner != nil {
			name = winner.String()
		}
		log.Info().Msgf("game over after %d moves: %s (south %d, north %d)",
			moves, name, final.SouthStore, final.NorthStore)
	}

	return Result{
		Winner:     winner,
		SouthScore: final.SouthStore,
		NorthScore: final.NorthStore,
		Moves:      moves,
		History:    state.History,
	}
}
