package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"kalah/game"
	"kalah/searcher"
)

// agentFunc adapts a function to the Agent interface.
type agentFunc func(state *game.State) (int, error)

func (f agentFunc) SelectMove(state *game.State) (int, error) {
	return f(state)
}

func firstLegal(state *game.State) (int, error) {
	return state.LegalMoves()[0], nil
}

func TestPlayGameCompletes(t *testing.T) {
	e := New(6, 4)
	south := searcher.NewRandom(1)
	north := searcher.NewRandom(2)

	result := e.PlayGame(south, north, false)

	require.LessOrEqual(t, result.Moves, MaxMoves)
	require.Equal(t, 48, result.SouthScore+result.NorthScore,
		"finalized scores account for every counter")
	require.Len(t, result.History, result.Moves)

	switch {
	case result.Winner == nil:
		require.Equal(t, result.SouthScore, result.NorthScore)
	case *result.Winner == game.South:
		require.Greater(t, result.SouthScore, result.NorthScore)
	default:
		require.Greater(t, result.NorthScore, result.SouthScore)
	}
}

func TestPlayGameRobustness(t *testing.T) {
	t.Run("out-of-range moves are substituted", func(t *testing.T) {
		e := New(6, 4)
		rogue := agentFunc(func(*game.State) (int, error) { return 99, nil })

		result := e.PlayGame(rogue, rogue, false)

		require.LessOrEqual(t, result.Moves, MaxMoves)
		require.Equal(t, 48, result.SouthScore+result.NorthScore)
	})

	t.Run("agent errors are substituted", func(t *testing.T) {
		e := New(6, 4)
		failing := agentFunc(func(*game.State) (int, error) {
			return 0, errors.New("search exploded")
		})

		result := e.PlayGame(failing, agentFunc(firstLegal), false)

		require.LessOrEqual(t, result.Moves, MaxMoves)
		require.Equal(t, 48, result.SouthScore+result.NorthScore)
	})

	t.Run("empty-pit choices are substituted", func(t *testing.T) {
		e := New(6, 4)
		// Always pick the last pit, legal or not.
		stubborn := agentFunc(func(state *game.State) (int, error) {
			return state.Board.PitsPerRow - 1, nil
		})

		result := e.PlayGame(stubborn, stubborn, false)

		require.LessOrEqual(t, result.Moves, MaxMoves)
		require.Equal(t, 48, result.SouthScore+result.NorthScore)
	})
}

func TestPlayGameDeterministicMatch(t *testing.T) {
	// First-legal-move play is fully deterministic, so two runs must agree
	// move for move.
	first := New(6, 4).PlayGame(agentFunc(firstLegal), agentFunc(firstLegal), false)
	second := New(6, 4).PlayGame(agentFunc(firstLegal), agentFunc(firstLegal), false)

	require.Empty(t, cmp.Diff(first, second))
	require.True(t, len(first.History) > 0)
}

func TestMoveCallback(t *testing.T) {
	e := New(6, 4)
	calls := 0
	var lastState *game.State
	e.SetMoveCallback(func(state *game.State, move int) {
		calls++
		lastState = state
		require.GreaterOrEqual(t, move, 0)
		require.Less(t, move, 6)
	})

	result := e.PlayGame(searcher.NewRandom(3), searcher.NewRandom(4), false)

	require.Equal(t, result.Moves, calls)
	require.True(t, lastState.IsTerminal() || result.Moves == MaxMoves)
}

func TestNewDefaults(t *testing.T) {
	e := New(0, 0)

	require.Equal(t, game.DefaultPitsPerRow, e.pitsPerRow)
	require.Equal(t, game.DefaultCountersPerPit, e.countersPerPit)
}

func TestPlayGameSmallBoard(t *testing.T) {
	e := New(2, 2)

	result := e.PlayGame(agentFunc(firstLegal), agentFunc(firstLegal), false)

	require.Equal(t, 8, result.SouthScore+result.NorthScore)
	require.LessOrEqual(t, result.Moves, MaxMoves)
}
