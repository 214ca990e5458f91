package game

// Weights for the positional evaluator. Material dominates so search stays
// tied to the literal game score; position control breaks ties; the endgame
// term sharpens evaluation once few counters remain.
const (
	materialWeight        = 100.0
	positionWeight        = 0.5
	endgameWeight         = 50.0
	endgameCounterCutoff  = 10
	evaluationScoreBound  = 200.0
	evaluationScoreSpread = 400.0
)

// EvaluatePosition scores a position from the given player's perspective.
// Positive is good for the player. Values are practically bounded around
// ±200 on the default 6-pit/4-counter board.
func EvaluatePosition(s *State, player Player) float64 {
	material := materialScore(s.Board, player)
	control := positionControlScore(s.Board, player)
	endgame := endgameScore(s.Board, player)

	return materialWeight*material + positionWeight*control + endgame
}

// NormalizeScore rescales an evaluation score to [0, 1] so it is comparable
// with rollout win statistics.
func NormalizeScore(score float64) float64 {
	normalized := (score + evaluationScoreBound) / evaluationScoreSpread
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

func materialScore(b *Board, player Player) float64 {
	return float64(b.Store(player) - b.Store(player.Opponent()))
}

func positionControlScore(b *Board, player Player) float64 {
	return float64(b.RowTotal(player) - b.RowTotal(player.Opponent()))
}

func endgameScore(b *Board, player Player) float64 {
	if b.TotalCounters() >= endgameCounterCutoff {
		return 0
	}

	diff := b.Store(player) - b.Store(player.Opponent())
	if diff > 0 {
		return endgameWeight * float64(diff)
	}
	if diff < 0 {
		return -endgameWeight * float64(-diff)
	}
	return 0
}
