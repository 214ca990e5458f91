package game

import "errors"

// ErrIllegalMove is returned when a move is attempted from an empty pit.
// This is always a caller bug: agents must pick from LegalMoves.
var ErrIllegalMove = errors.New("illegal move: source pit is empty")

// LegalMoves returns the indices (relative to the player's own row) of the
// player's non-empty pits.
func LegalMoves(b *Board, player Player) []int {
	moves := []int{}
	for i := 0; i < b.PitsPerRow; i++ {
		if b.Pit(player, i) > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// ApplyMove sows the counters from the player's pit and resolves the
// outcome. It returns the resulting board, the move kind, and the player to
// move next. The input board is not modified.
//
// Sowing walks the cyclic position sequence South pits, South store, North
// pits, North store. The opponent's store is skipped without consuming a
// counter. The last counter decides the outcome: the mover's own store
// grants an extra turn; a previously empty own pit whose opposite pit is
// non-empty triggers a capture; anything else passes the turn.
func ApplyMove(b *Board, player Player, pitIndex int) (*Board, MoveKind, Player, error) {
	board := b.Copy()
	ppr := board.PitsPerRow

	pit := pitIndex
	if player == North {
		pit = ppr + pitIndex
	}

	counters := board.Pits[pit]
	if counters == 0 {
		return nil, MoveNormal, player, ErrIllegalMove
	}
	board.Pits[pit] = 0

	// Position sequence: 0..ppr-1 South pits, ppr South store,
	// ppr+1..2*ppr North pits, 2*ppr+1 North store.
	cycle := 2*ppr + 2
	southStorePos := ppr
	northStorePos := 2*ppr + 1

	pos := pit
	if pit >= ppr {
		pos = pit + 1
	}

	lastWasStore := false
	lastPit := -1
	for ; counters > 0; counters-- {
		pos = (pos + 1) % cycle
		if (pos == southStorePos && player == North) || (pos == northStorePos && player == South) {
			pos = (pos + 1) % cycle
		}

		switch pos {
		case southStorePos:
			board.SouthStore++
			lastWasStore = true
			lastPit = -1
		case northStorePos:
			board.NorthStore++
			lastWasStore = true
			lastPit = -1
		default:
			idx := pos
			if pos > southStorePos {
				idx = pos - 1
			}
			board.Pits[idx]++
			lastWasStore = false
			lastPit = idx
		}
	}

	if lastWasStore {
		return board, MoveExtraTurn, player, nil
	}

	if lastPit >= 0 && isOwnPit(lastPit, player, ppr) && board.Pits[lastPit] == 1 {
		opposite := oppositePit(lastPit, ppr)
		if board.Pits[opposite] > 0 {
			captured := board.Pits[opposite] + 1
			board.Pits[opposite] = 0
			board.Pits[lastPit] = 0
			if player == South {
				board.SouthStore += captured
			} else {
				board.NorthStore += captured
			}
			return board, MoveCapture, player.Opponent(), nil
		}
	}

	return board, MoveNormal, player.Opponent(), nil
}

func isOwnPit(pit int, player Player, ppr int) bool {
	if player == South {
		return pit < ppr
	}
	return pit >= ppr
}

// oppositePit mirrors a pit index across the board.
func oppositePit(pit, ppr int) int {
	return 2*ppr - 1 - pit
}

// IsGameOver reports whether either row is completely empty.
func IsGameOver(b *Board) bool {
	return b.IsRowEmpty(South) || b.IsRowEmpty(North)
}

// FinalizeGame sweeps the remaining counters of the non-empty row into that
// row owner's store. The player who still has counters collects them.
func FinalizeGame(b *Board) *Board {
	board := b.Copy()
	if board.IsRowEmpty(South) {
		for i := board.PitsPerRow; i < 2*board.PitsPerRow; i++ {
			board.NorthStore += board.Pits[i]
			board.Pits[i] = 0
		}
	} else if board.IsRowEmpty(North) {
		for i := 0; i < board.PitsPerRow; i++ {
			board.SouthStore += board.Pits[i]
			board.Pits[i] = 0
		}
	}
	return board
}

// Winner finalizes the board and compares stores. It returns nil while the
// game is still running and nil on a draw.
func Winner(b *Board) *Player {
	if !IsGameOver(b) {
		return nil
	}
	final := FinalizeGame(b)
	switch {
	case final.SouthStore > final.NorthStore:
		winner := South
		return &winner
	case final.NorthStore > final.SouthStore:
		winner := North
		return &winner
	default:
		return nil
	}
}
