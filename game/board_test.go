package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard(6, 4)

	require.Len(t, board.Pits, 12)
	for i, c := range board.Pits {
		require.Equal(t, 4, c, "pit %d", i)
	}
	require.Equal(t, 0, board.SouthStore)
	require.Equal(t, 0, board.NorthStore)
	require.Equal(t, 48, board.TotalCounters())
}

func TestBoardQueries(t *testing.T) {
	board := NewBoard(6, 0)
	board.Pits[1] = 3
	board.Pits[6+2] = 5
	board.SouthStore = 7

	require.Equal(t, 3, board.Pit(South, 1))
	require.Equal(t, 5, board.Pit(North, 2))
	require.Equal(t, 7, board.Store(South))
	require.Equal(t, 0, board.Store(North))
	require.Equal(t, 3, board.RowTotal(South))
	require.Equal(t, 5, board.RowTotal(North))
	require.False(t, board.IsRowEmpty(South))

	board.Pits[1] = 0
	require.True(t, board.IsRowEmpty(South))
	require.False(t, board.IsRowEmpty(North))
}

func TestBoardCopy(t *testing.T) {
	board := NewBoard(6, 4)
	clone := board.Copy()

	clone.Pits[0] = 99
	clone.SouthStore = 5

	require.Equal(t, 4, board.Pits[0], "copy must not share pit storage")
	require.Equal(t, 0, board.SouthStore)
}

func TestBoardString(t *testing.T) {
	board := NewBoard(2, 1)
	board.Pits[2] = 3

	got := board.String()

	require.Contains(t, got, "North store: 0")
	require.Contains(t, got, "South store: 0")
	// North row renders right to left.
	require.Contains(t, got, "North:  1  3")
	require.Contains(t, got, "South:  1  1")
}
