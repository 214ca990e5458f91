package searcher

import (
	"fmt"

	"kalah/game"
)

// node is one position in a search tree. Children are owned by their parent
// and kept in parallel with the moves that spawned them; moves beyond
// len(children) are still untried. The parent link is used only for
// backpropagation. Trees are built fresh for every real move and discarded
// afterwards, so nodes carry no locking.
type node struct {
	state    *game.State
	parent   *node
	moves    []int
	children []*node
	visits   int
	wins     float64
	// heuristic is the running-average positional value, maintained by the
	// enhanced search only.
	heuristic float64
}

func newNode(state *game.State, parent *node) *node {
	return &node{
		state:  state,
		parent: parent,
		moves:  state.LegalMoves(),
	}
}

func (n *node) isTerminal() bool {
	return len(n.moves) == 0
}

func (n *node) isFullyExpanded() bool {
	return len(n.children) == len(n.moves)
}

// expand materializes the next untried move into a new child.
func (n *node) expand() *node {
	move := n.moves[len(n.children)]
	state, err := n.state.Play(move)
	if err != nil {
		// Moves come straight from LegalMoves, so this cannot happen.
		panic(fmt.Sprintf("expanding legal move %d: %v", move, err))
	}
	child := newNode(state, n)
	n.children = append(n.children, child)
	return child
}

// bestChild picks the child maximizing UCB1, with exploitation mixed between
// the simulation win rate and the running heuristic average by alpha. Plain
// MCTS passes alpha 0 for pure win-rate exploitation.
func (n *node) bestChild(exploration, alpha float64) *node {
	var best *node
	bestScore := -1.0
	for _, child := range n.children {
		var exploitation float64
		if child.visits > 0 {
			winRate := child.wins / float64(child.visits)
			exploitation = (1-alpha)*winRate + alpha*child.heuristic
		}
		score := ucb1(exploitation, child.visits, n.visits, exploration)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// bestMove returns the most visited root move (robust-child selection).
// Ties keep the first-seen child.
func (n *node) bestMove() int {
	bestVisits := -1
	best := n.moves[0]
	for i, child := range n.children {
		if child.visits > bestVisits {
			bestVisits = child.visits
			best = n.moves[i]
		}
	}
	return best
}
