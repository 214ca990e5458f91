package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kalah/engine"
	"kalah/game"
)

func result(winner *game.Player, south, north, moves int) engine.Result {
	return engine.Result{
		Winner:     winner,
		SouthScore: south,
		NorthScore: north,
		Moves:      moves,
	}
}

func player(p game.Player) *game.Player {
	return &p
}

func TestCollectorSummary(t *testing.T) {
	t.Run("empty collector has a zero summary", func(t *testing.T) {
		require.Equal(t, Summary{}, NewCollector().Summary())
	})

	t.Run("aggregates wins, draws, moves, and score differences", func(t *testing.T) {
		c := NewCollector()
		c.Add(result(player(game.South), 30, 18, 40))
		c.Add(result(player(game.South), 26, 22, 60))
		c.Add(result(player(game.North), 20, 28, 50))
		c.Add(result(nil, 24, 24, 70))

		s := c.Summary()

		require.Equal(t, 4, s.TotalGames)
		require.Equal(t, 2, s.SouthWins)
		require.Equal(t, 1, s.NorthWins)
		require.Equal(t, 1, s.Draws)
		require.Equal(t, 50.0, s.SouthWinRate)
		require.Equal(t, 25.0, s.NorthWinRate)
		require.Equal(t, 25.0, s.DrawRate)
		require.Equal(t, 55.0, s.AvgMoves)
		require.Equal(t, 2.0, s.AvgScoreDiff, "(12+4-8+0)/4")
		require.Equal(t, -8, s.MinScoreDiff)
		require.Equal(t, 12, s.MaxScoreDiff)
	})

	t.Run("results are kept in order", func(t *testing.T) {
		c := NewCollector()
		c.Add(result(nil, 24, 24, 10))
		c.Add(result(player(game.North), 20, 28, 20))

		results := c.Results()

		require.Len(t, results, 2)
		require.Equal(t, 10, results[0].Moves)
		require.Equal(t, 20, results[1].Moves)
	})
}
