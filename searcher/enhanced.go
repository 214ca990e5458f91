package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"kalah/game"
)

// DefaultAlpha is the enhanced search's heuristic mixing weight.
const DefaultAlpha = 0.5

// EnhancedMCTS augments plain MCTS with implicit minimax backups: every node
// keeps a running-average heuristic value next to its rollout statistics,
// and selection mixes the two with weight alpha.
//
// After Lanctot et al., "Monte Carlo Tree Search with Heuristic Evaluations
// using Implicit Minimax Backups" (2014).
type EnhancedMCTS struct {
	iterations  int
	exploration float64
	alpha       float64
	evaluate    game.Evaluate
	rng         *rand.Rand
}

func NewEnhancedMCTS(options ...Option) *EnhancedMCTS {
	c := config{
		iterations:  DefaultEnhancedIterations,
		exploration: DefaultExploration,
		alpha:       DefaultAlpha,
		seed:        uint64(time.Now().UnixNano()),
		evaluate:    game.EvaluatePosition,
	}
	for _, option := range options {
		option(&c)
	}
	return &EnhancedMCTS{
		iterations:  c.iterations,
		exploration: c.exploration,
		alpha:       c.alpha,
		evaluate:    c.evaluate,
		rng:         rand.New(rand.NewSource(c.seed)),
	}
}

// SelectMove runs the mixed search from the given state. Rollouts and
// heuristic samples share one perspective per iteration, the mover at the
// expanded node, so both statistics stay comparable during selection.
func (e *EnhancedMCTS) SelectMove(state *game.State) (int, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	if len(legal) == 1 {
		return legal[0], nil
	}

	root := newNode(state, nil)
	for i := 0; i < e.iterations; i++ {
		leaf := descend(root, e.exploration, e.alpha)
		if !leaf.isTerminal() {
			leaf = leaf.expand()
		}
		player := perspective(leaf)
		simulation := rollout(leaf.state, player, e.rng)
		heuristic := leafValue(leaf.state, player, e.evaluate)
		backpropagateMixed(leaf, simulation, heuristic)
	}

	return root.bestMove(), nil
}

// leafValue maps a state to [0, 1] from the given player's perspective:
// terminal states score exactly like rollout outcomes, non-terminal states
// use the rescaled positional evaluator.
func leafValue(state *game.State, player game.Player, evaluate game.Evaluate) float64 {
	if state.IsTerminal() {
		return reward(state.Winner(), player)
	}
	return game.NormalizeScore(evaluate(state, player))
}

// backpropagateMixed updates both the rollout accumulator and the running
// heuristic average along the path to the root, inverting both values at
// every level exactly as plain backpropagation does.
func backpropagateMixed(n *node, simulation, heuristic float64) {
	for n != nil {
		n.visits++
		n.wins += simulation
		if n.visits == 1 {
			n.heuristic = heuristic
		} else {
			n.heuristic = (n.heuristic*float64(n.visits-1) + heuristic) / float64(n.visits)
		}
		simulation = 1 - simulation
		heuristic = 1 - heuristic
		n = n.parent
	}
}
