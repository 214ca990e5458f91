// Package metrics aggregates and exports game results from batch runs.
package metrics

import (
	"kalah/engine"
	"kalah/game"
)

// Summary condenses the results of one matchup.
type Summary struct {
	TotalGames   int
	SouthWins    int
	NorthWins    int
	Draws        int
	SouthWinRate float64 // percent
	NorthWinRate float64 // percent
	DrawRate     float64 // percent
	AvgMoves     float64
	AvgScoreDiff float64 // south minus north
	MinScoreDiff int
	MaxScoreDiff int
}

// Collector accumulates game results. Not safe for concurrent use; callers
// serialize Add, typically by funneling results through one channel.
type Collector struct {
	results    []engine.Result
	southWins  int
	northWins  int
	draws      int
	totalMoves int
	scoreDiffs []int
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(result engine.Result) {
	c.results = append(c.results, result)

	switch {
	case result.Winner == nil:
		c.draws++
	case *result.Winner == game.South:
		c.southWins++
	default:
		c.northWins++
	}

	c.totalMoves += result.Moves
	c.scoreDiffs = append(c.scoreDiffs, result.SouthScore-result.NorthScore)
}

func (c *Collector) Results() []engine.Result {
	return c.results
}

func (c *Collector) Summary() Summary {
	total := len(c.results)
	if total == 0 {
		return Summary{}
	}

	diffSum := 0
	minDiff := c.scoreDiffs[0]
	maxDiff := c.scoreDiffs[0]
	for _, d := range c.scoreDiffs {
		diffSum += d
		if d < minDiff {
			minDiff = d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}

	return Summary{
		TotalGames:   total,
		SouthWins:    c.southWins,
		NorthWins:    c.northWins,
		Draws:        c.draws,
		SouthWinRate: float64(c.southWins) / float64(total) * 100,
		NorthWinRate: float64(c.northWins) / float64(total) * 100,
		DrawRate:     float64(c.draws) / float64(total) * 100,
		AvgMoves:     float64(c.totalMoves) / float64(total),
		AvgScoreDiff: float64(diffSum) / float64(total),
		MinScoreDiff: minDiff,
		MaxScoreDiff: maxDiff,
	}
}
