package game

import (
	"fmt"
	"strings"
)

// Board holds the counters for both pit rows and both stores.
//
// Pit layout: indices 0..PitsPerRow-1 are South's pits (left to right),
// indices PitsPerRow..2*PitsPerRow-1 are North's. The stores are kept
// separately because they are never sowable by the opponent.
type Board struct {
	PitsPerRow     int
	CountersPerPit int
	Pits           []int
	SouthStore     int
	NorthStore     int
}

// NewBoard creates a board with every pit holding countersPerPit counters
// and both stores empty.
func NewBoard(pitsPerRow, countersPerPit int) *Board {
	pits := make([]int, 2*pitsPerRow)
	for i := range pits {
		pits[i] = countersPerPit
	}
	return &Board{
		PitsPerRow:     pitsPerRow,
		CountersPerPit: countersPerPit,
		Pits:           pits,
		SouthStore:     0,
		NorthStore:     0,
	}
}

func (b *Board) Copy() *Board {
	pits := make([]int, len(b.Pits))
	copy(pits, b.Pits)
	return &Board{
		PitsPerRow:     b.PitsPerRow,
		CountersPerPit: b.CountersPerPit,
		Pits:           pits,
		SouthStore:     b.SouthStore,
		NorthStore:     b.NorthStore,
	}
}

// Pit returns the counters in the player's pit at index (0..PitsPerRow-1,
// relative to the player's own row).
func (b *Board) Pit(player Player, index int) int {
	if player == South {
		return b.Pits[index]
	}
	return b.Pits[b.PitsPerRow+index]
}

func (b *Board) Store(player Player) int {
	if player == South {
		return b.SouthStore
	}
	return b.NorthStore
}

// RowTotal returns the counters remaining in the player's row.
func (b *Board) RowTotal(player Player) int {
	total := 0
	for i := 0; i < b.PitsPerRow; i++ {
		total += b.Pit(player, i)
	}
	return total
}

// IsRowEmpty reports whether every pit in the player's row is empty.
func (b *Board) IsRowEmpty(player Player) bool {
	return b.RowTotal(player) == 0
}

// TotalCounters returns the counters on the board, excluding the stores.
func (b *Board) TotalCounters() int {
	total := 0
	for _, c := range b.Pits {
		total += c
	}
	return total
}

// String renders the board with North's row reversed, so both rows read in
// sowing order from each player's own perspective.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "North store: %d\n", b.NorthStore)
	sb.WriteString("North:")
	for i := 2*b.PitsPerRow - 1; i >= b.PitsPerRow; i-- {
		fmt.Fprintf(&sb, " %2d", b.Pits[i])
	}
	sb.WriteString("\nSouth:")
	for i := 0; i < b.PitsPerRow; i++ {
		fmt.Fprintf(&sb, " %2d", b.Pits[i])
	}
	fmt.Fprintf(&sb, "\nSouth store: %d", b.SouthStore)
	return sb.String()
}
