package game

import "fmt"

// State pairs a board with the player to move and the move history. States
// are immutable: Play returns a fresh copy, so search agents can branch over
// many futures from one state without aliasing.
type State struct {
	Board         *Board
	CurrentPlayer Player
	History       []Move
}

// NewState creates the starting position with South to move.
func NewState(pitsPerRow, countersPerPit int) *State {
	return &State{
		Board:         NewBoard(pitsPerRow, countersPerPit),
		CurrentPlayer: South,
	}
}

// LegalMoves returns the current player's legal pit indices.
func (s *State) LegalMoves() []int {
	return LegalMoves(s.Board, s.CurrentPlayer)
}

// Play applies a move for the current player and returns the resulting
// state. The receiver is left untouched.
func (s *State) Play(pitIndex int) (*State, error) {
	board, kind, next, err := ApplyMove(s.Board, s.CurrentPlayer, pitIndex)
	if err != nil {
		return nil, fmt.Errorf("player %v pit %d: %w", s.CurrentPlayer, pitIndex, err)
	}

	history := make([]Move, len(s.History), len(s.History)+1)
	copy(history, s.History)
	history = append(history, Move{Player: s.CurrentPlayer, Pit: pitIndex, Kind: kind})

	return &State{
		Board:         board,
		CurrentPlayer: next,
		History:       history,
	}, nil
}

func (s *State) IsTerminal() bool {
	return IsGameOver(s.Board)
}

func (s *State) Winner() *Player {
	return Winner(s.Board)
}

// Scores returns the current store totals, South first.
func (s *State) Scores() (int, int) {
	return s.Board.SouthStore, s.Board.NorthStore
}

func (s *State) String() string {
	return fmt.Sprintf("to move: %v\n%v", s.CurrentPlayer, s.Board)
}
