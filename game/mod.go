package game

// Default board configuration for standard Kalah.
const (
	DefaultPitsPerRow     = 6
	DefaultCountersPerPit = 4
)

// Player identifies one of the two sides of the board.
type Player int

const (
	South Player = 0
	North Player = 1
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == South {
		return "South"
	}
	return "North"
}

// MoveKind classifies the outcome of a sowing move.
type MoveKind int

const (
	MoveNormal MoveKind = iota
	MoveExtraTurn
	MoveCapture
)

func (k MoveKind) String() string {
	switch k {
	case MoveExtraTurn:
		return "extra-turn"
	case MoveCapture:
		return "capture"
	default:
		return "normal"
	}
}

// Move records one completed move: who played which pit and how it resolved.
type Move struct {
	Player Player
	Pit    int
	Kind   MoveKind
}

// Evaluate scores a state from the given player's perspective, positive
// meaning favorable for that player.
type Evaluate func(state *State, player Player) float64
