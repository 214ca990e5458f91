package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"kalah/game"
)

// Random picks uniformly among the legal moves. It is the baseline agent
// and owns its generator, so concurrent games never share a random source.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent. A zero seed derives one from the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) SelectMove(state *game.State) (int, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	return legal[r.rng.Intn(len(legal))], nil
}
