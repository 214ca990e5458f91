package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"kalah/engine"
)

// GameRecord ties one game result to the matchup that produced it.
type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	engine.Result
}

// Writer stores experiment results as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "winner", "south_score", "north_score", "moves"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		winner := "draw"
		if record.Winner != nil {
			winner = record.Winner.String()
		}
		row := []string{
			strconv.Itoa(record.ID),
			record.Agent1,
			record.Agent2,
			winner,
			strconv.Itoa(record.SouthScore),
			strconv.Itoa(record.NorthScore),
			strconv.Itoa(record.Moves),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummary(agent1, agent2 string, summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")

	// Append so every matchup of an experiment lands in one file.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open summary file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat summary file: %w", err)
	}

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if info.Size() == 0 {
		header := []string{
			"agent1", "agent2", "games", "south_wins", "north_wins", "draws",
			"south_win_rate", "north_win_rate", "avg_moves", "avg_score_diff",
		}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write summary header: %w", err)
		}
	}

	row := []string{
		agent1,
		agent2,
		strconv.Itoa(summary.TotalGames),
		strconv.Itoa(summary.SouthWins),
		strconv.Itoa(summary.NorthWins),
		strconv.Itoa(summary.Draws),
		strconv.FormatFloat(summary.SouthWinRate, 'f', 1, 64),
		strconv.FormatFloat(summary.NorthWinRate, 'f', 1, 64),
		strconv.FormatFloat(summary.AvgMoves, 'f', 1, 64),
		strconv.FormatFloat(summary.AvgScoreDiff, 'f', 2, 64),
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write summary row: %w", err)
	}

	return nil
}
