package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePosition(t *testing.T) {
	t.Run("initial position is neutral", func(t *testing.T) {
		state := NewState(6, 4)

		require.Equal(t, 0.0, EvaluatePosition(state, South))
		require.Equal(t, 0.0, EvaluatePosition(state, North))
	})

	t.Run("material dominates the score", func(t *testing.T) {
		state := NewState(6, 4)
		state.Board.SouthStore = 3
		state.Board.NorthStore = 1

		require.Equal(t, 200.0, EvaluatePosition(state, South))
		require.Equal(t, -200.0, EvaluatePosition(state, North))
	})

	t.Run("position control breaks material ties", func(t *testing.T) {
		state := NewState(6, 0)
		state.Board.Pits[0] = 8 // south row total 8
		state.Board.Pits[6] = 2 // north row total 2

		require.Equal(t, 3.0, EvaluatePosition(state, South))
		require.Equal(t, -3.0, EvaluatePosition(state, North))
	})

	t.Run("endgame term kicks in below ten board counters", func(t *testing.T) {
		state := NewState(6, 0)
		state.Board.Pits[0] = 9
		state.Board.SouthStore = 20
		state.Board.NorthStore = 18

		// material 2*100 + control 9*0.5 + endgame 50*2
		require.Equal(t, 304.5, EvaluatePosition(state, South))
		// symmetric penalty for the trailing side
		require.Equal(t, -304.5, EvaluatePosition(state, North))
	})

	t.Run("endgame term stays off at ten or more counters", func(t *testing.T) {
		state := NewState(6, 0)
		state.Board.Pits[0] = 10
		state.Board.SouthStore = 20
		state.Board.NorthStore = 18

		require.Equal(t, 205.0, EvaluatePosition(state, South))
	})
}

func TestNormalizeScore(t *testing.T) {
	require.Equal(t, 0.5, NormalizeScore(0))
	require.Equal(t, 1.0, NormalizeScore(200))
	require.Equal(t, 0.0, NormalizeScore(-200))
	require.Equal(t, 1.0, NormalizeScore(1000), "scores beyond the bound are clamped")
	require.Equal(t, 0.0, NormalizeScore(-1000))
	require.Equal(t, 0.75, NormalizeScore(100))
}
