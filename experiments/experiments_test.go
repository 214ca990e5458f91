package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kalah/searcher"
)

func TestRunBatch(t *testing.T) {
	t.Run("plays the requested number of games", func(t *testing.T) {
		south := searcher.Config{Kind: searcher.KindRandom, Seed: 1}
		north := searcher.Config{Kind: searcher.KindRandom, Seed: 2}

		collector, err := RunBatch(south, north, 20, 4, 6, 4)

		require.NoError(t, err)
		summary := collector.Summary()
		require.Equal(t, 20, summary.TotalGames)
		require.Equal(t, 20, summary.SouthWins+summary.NorthWins+summary.Draws)
		require.Positive(t, summary.AvgMoves)
	})

	t.Run("seeded batches are reproducible", func(t *testing.T) {
		south := searcher.Config{Kind: searcher.KindRandom, Seed: 10}
		north := searcher.Config{Kind: searcher.KindRandom, Seed: 20}

		first, err := RunBatch(south, north, 10, 2, 6, 4)
		require.NoError(t, err)
		second, err := RunBatch(south, north, 10, 2, 6, 4)
		require.NoError(t, err)

		require.Equal(t, first.Summary(), second.Summary())
	})

	t.Run("invalid configurations fail upfront", func(t *testing.T) {
		bad := searcher.Config{Kind: "oracle"}
		good := searcher.Config{Kind: searcher.KindRandom}

		_, err := RunBatch(bad, good, 1, 1, 6, 4)
		require.Error(t, err)

		_, err = RunBatch(good, bad, 1, 1, 6, 4)
		require.Error(t, err)
	})

	t.Run("single worker works", func(t *testing.T) {
		cfg := searcher.Config{Kind: searcher.KindRandom, Seed: 5}

		collector, err := RunBatch(cfg, cfg, 3, 1, 2, 2)

		require.NoError(t, err)
		require.Equal(t, 3, collector.Summary().TotalGames)
	})
}

func TestOffsetSeed(t *testing.T) {
	seeded := searcher.Config{Kind: searcher.KindMCTS, Seed: 100}
	require.Equal(t, uint64(103), offsetSeed(seeded, 3).Seed)

	unseeded := searcher.Config{Kind: searcher.KindMCTS}
	require.Equal(t, uint64(0), offsetSeed(unseeded, 3).Seed,
		"clock-seeded agents stay clock-seeded")
}
