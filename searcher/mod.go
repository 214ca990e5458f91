package searcher

import (
	"errors"
	"math"

	"kalah/game"
)

// Agent selects a legal move for the current player of a state. Agents only
// read the state; they never own or mutate it.
type Agent interface {
	SelectMove(state *game.State) (int, error)
}

// ErrNoLegalMoves is returned when an agent is asked to move on a terminal
// state. Callers must check IsTerminal first.
var ErrNoLegalMoves = errors.New("no legal moves available")

// Rewards estimate the chance of winning from a player's perspective.
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

// MaxRolloutPlies caps random playouts that fail to terminate.
const MaxRolloutPlies = 200

// DefaultExploration is the UCB1 exploration constant.
const DefaultExploration = math.Sqrt2

// ucb1 balances exploitation and exploration. Unvisited children have
// infinite priority and are always picked first.
func ucb1(exploitation float64, visits, parentVisits int, c float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return exploitation + c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}

// reward maps a game outcome to a score from the given player's perspective.
// A nil winner (draw or unfinished rollout at the ply cap) counts as a draw.
func reward(winner *game.Player, player game.Player) float64 {
	if winner == nil {
		return Draw
	}
	if *winner == player {
		return Win
	}
	return Loss
}
