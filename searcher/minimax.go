package searcher

import (
	"fmt"
	"math"

	"kalah/game"
)

// DefaultMinimaxDepth is the default fixed search depth.
const DefaultMinimaxDepth = 4

// Minimax selects moves by depth-limited alpha-beta search. Maximizing and
// minimizing are decided by comparing each node's mover to the root mover,
// not by depth parity: extra turns let the same player move consecutively.
type Minimax struct {
	depth int
}

func NewMinimax(depth int) *Minimax {
	if depth <= 0 {
		depth = DefaultMinimaxDepth
	}
	return &Minimax{depth: depth}
}

// SelectMove returns the root move with the best search value. Root moves
// are tried in pit order without any ordering heuristic; ties keep the first
// move found.
func (m *Minimax) SelectMove(state *game.State) (int, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	if len(legal) == 1 {
		return legal[0], nil
	}

	rootPlayer := state.CurrentPlayer
	best := legal[0]
	bestValue := math.Inf(-1)
	alpha := math.Inf(-1)
	beta := math.Inf(1)

	for _, move := range legal {
		next, err := state.Play(move)
		if err != nil {
			return 0, fmt.Errorf("searching move %d: %w", move, err)
		}
		value := m.search(next, m.depth-1, alpha, beta, rootPlayer)
		if value > bestValue {
			bestValue = value
			best = move
		}
		alpha = math.Max(alpha, bestValue)
		if alpha >= beta {
			break
		}
	}

	return best, nil
}

func (m *Minimax) search(state *game.State, depth int, alpha, beta float64, rootPlayer game.Player) float64 {
	if state.IsTerminal() || depth == 0 {
		return evaluate(state, rootPlayer)
	}

	legal := state.LegalMoves()
	maximizing := state.CurrentPlayer == rootPlayer

	if maximizing {
		value := math.Inf(-1)
		for _, move := range legal {
			next, err := state.Play(move)
			if err != nil {
				panic(fmt.Sprintf("searching legal move %d: %v", move, err))
			}
			value = math.Max(value, m.search(next, depth-1, alpha, beta, rootPlayer))
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range legal {
		next, err := state.Play(move)
		if err != nil {
			panic(fmt.Sprintf("searching legal move %d: %v", move, err))
		}
		value = math.Min(value, m.search(next, depth-1, alpha, beta, rootPlayer))
		beta = math.Min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}

// evaluate scores a leaf. Terminal states use the finalized store difference
// so search values stay consistent with actual game outcomes; cut-off states
// fall back to the positional heuristic.
func evaluate(state *game.State, rootPlayer game.Player) float64 {
	if state.IsTerminal() {
		final := game.FinalizeGame(state.Board)
		diff := float64(final.SouthStore - final.NorthStore)
		if rootPlayer == game.South {
			return diff
		}
		return -diff
	}
	return game.EvaluatePosition(state, rootPlayer)
}
