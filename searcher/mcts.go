package searcher

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"kalah/game"
)

// Default search budgets per move.
const (
	DefaultMCTSIterations     = 500
	DefaultEnhancedIterations = 1000
)

// config carries the tunables shared by both tree searches.
type config struct {
	iterations  int
	exploration float64
	alpha       float64
	seed        uint64
	evaluate    game.Evaluate
}

type Option func(*config)

// WithIterations sets the number of search iterations per move.
func WithIterations(iterations int) Option {
	return func(c *config) {
		if iterations > 0 {
			c.iterations = iterations
		}
	}
}

// WithExploration sets the UCB1 exploration constant.
func WithExploration(exploration float64) Option {
	return func(c *config) {
		if exploration > 0 {
			c.exploration = exploration
		}
	}
}

// WithAlpha sets the heuristic mixing weight of the enhanced search
// (0 = pure simulation, 1 = pure heuristic). Plain MCTS ignores it.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		if alpha >= 0 && alpha <= 1 {
			c.alpha = alpha
		}
	}
}

// WithSeed fixes the random source for reproducible searches.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		if seed != 0 {
			c.seed = seed
		}
	}
}

// WithEvaluationFn replaces the positional evaluator used by the enhanced
// search. Plain MCTS ignores it.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// MCTS selects moves by Monte Carlo tree search with UCB1 selection, random
// rollouts, and robust-child move choice.
type MCTS struct {
	iterations  int
	exploration float64
	rng         *rand.Rand
}

func NewMCTS(options ...Option) *MCTS {
	c := config{
		iterations:  DefaultMCTSIterations,
		exploration: DefaultExploration,
		seed:        uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(&c)
	}
	return &MCTS{
		iterations:  c.iterations,
		exploration: c.exploration,
		rng:         rand.New(rand.NewSource(c.seed)),
	}
}

// SelectMove runs the search from the given state and returns the most
// visited root move.
func (m *MCTS) SelectMove(state *game.State) (int, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	if len(legal) == 1 {
		return legal[0], nil
	}

	root := newNode(state, nil)
	for i := 0; i < m.iterations; i++ {
		leaf := descend(root, m.exploration, 0)
		if !leaf.isTerminal() {
			leaf = leaf.expand()
		}
		result := rollout(leaf.state, perspective(leaf), m.rng)
		backpropagate(leaf, result)
	}

	return root.bestMove(), nil
}

// perspective returns the player whose viewpoint a node's statistics use:
// the mover at expansion time, i.e. the player who made the move into the
// node. Selection at the parent then reads child win rates from the parent
// mover's own viewpoint.
func perspective(n *node) game.Player {
	if n.parent != nil {
		return n.parent.state.CurrentPlayer
	}
	return n.state.CurrentPlayer
}

// descend walks down the tree while nodes are fully expanded and not
// terminal, choosing UCB1-best children.
func descend(n *node, exploration, alpha float64) *node {
	for !n.isTerminal() && n.isFullyExpanded() {
		n = n.bestChild(exploration, alpha)
	}
	return n
}

// rollout plays uniformly random moves until the game ends or the ply cap is
// reached, and scores the outcome from the given player's perspective.
func rollout(state *game.State, player game.Player, rng *rand.Rand) float64 {
	for ply := 0; ply < MaxRolloutPlies; ply++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		next, err := state.Play(moves[rng.Intn(len(moves))])
		if err != nil {
			panic(fmt.Sprintf("rollout played an illegal move: %v", err))
		}
		state = next
	}
	return reward(state.Winner(), player)
}

// backpropagate adds the result to every node on the path to the root,
// inverting it at each level since each level alternates whose perspective
// "winning" means. The inversion applies across extra-turn edges too; the
// tree absorbs extra turns structurally.
func backpropagate(n *node, result float64) {
	for n != nil {
		n.visits++
		n.wins += result
		result = 1 - result
		n = n.parent
	}
}
