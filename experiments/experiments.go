// Package experiments runs batches of games between configured agents and
// aggregates the outcomes.
package experiments

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"kalah/engine"
	"kalah/experiments/metrics"
	"kalah/searcher"
)

const (
	DefaultGames   = 100
	DefaultWorkers = 4
)

// Matchup pairs two agent configurations, South first.
type Matchup struct {
	South searcher.Config
	North searcher.Config
}

// Experiment describes a named set of matchups. Zero fields fall back to
// the defaults.
type Experiment struct {
	Name           string
	Matchups       []Matchup
	Games          int // per matchup
	Workers        int
	PitsPerRow     int
	CountersPerPit int
}

// Run plays every matchup, logs per-matchup summaries, and stores game
// records and summaries as CSV.
func (e Experiment) Run() error {
	games := e.Games
	if games <= 0 {
		games = DefaultGames
	}

	writer, err := metrics.NewWriter(e.Name)
	if err != nil {
		return fmt.Errorf("experiment %s: %w", e.Name, err)
	}

	log.Info().Msgf("starting %s experiment: %d matchups, %d games each",
		e.Name, len(e.Matchups), games)

	records := []metrics.GameRecord{}
	for i, matchup := range e.Matchups {
		label1 := string(matchup.South.Kind)
		label2 := string(matchup.North.Kind)
		log.Info().Msgf("matchup %d of %d: %s (south) vs %s (north)",
			i+1, len(e.Matchups), label1, label2)

		collector, err := RunBatch(matchup.South, matchup.North, games, e.Workers,
			e.PitsPerRow, e.CountersPerPit)
		if err != nil {
			return fmt.Errorf("experiment %s matchup %d: %w", e.Name, i+1, err)
		}

		summary := collector.Summary()
		log.Info().Msgf("%s vs %s: south %.1f%%, north %.1f%%, draws %.1f%%, avg %.1f moves",
			label1, label2, summary.SouthWinRate, summary.NorthWinRate,
			summary.DrawRate, summary.AvgMoves)

		if err := writer.WriteSummary(label1, label2, summary); err != nil {
			return fmt.Errorf("experiment %s: %w", e.Name, err)
		}
		for _, result := range collector.Results() {
			records = append(records, metrics.GameRecord{
				ID:     len(records) + 1,
				Agent1: label1,
				Agent2: label2,
				Result: result,
			})
		}
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return fmt.Errorf("experiment %s: %w", e.Name, err)
	}
	log.Info().Msgf("completed %s experiment: results in %s", e.Name, writer.BaseDir())
	return nil
}

// RunBatch plays the given number of games between the two configurations
// across a pool of workers. Every game gets its own engine and freshly
// built agents, so nothing is shared between concurrent games; results are
// serialized through one channel into the collector.
func RunBatch(south, north searcher.Config, games, workers, pitsPerRow, countersPerPit int) (*metrics.Collector, error) {
	// Validate configurations before spawning anything.
	if _, err := searcher.NewAgent(south); err != nil {
		return nil, fmt.Errorf("south agent: %w", err)
	}
	if _, err := searcher.NewAgent(north); err != nil {
		return nil, fmt.Errorf("north agent: %w", err)
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	tasks := make(chan int, games)
	for i := 0; i < games; i++ {
		tasks <- i
	}
	close(tasks)

	results := make(chan engine.Result, games)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				agentSouth, err := searcher.NewAgent(offsetSeed(south, i))
				if err != nil {
					panic(err) // validated above
				}
				agentNorth, err := searcher.NewAgent(offsetSeed(north, i))
				if err != nil {
					panic(err)
				}
				e := engine.New(pitsPerRow, countersPerPit)
				results <- e.PlayGame(agentSouth, agentNorth, false)
				log.Debug().Msgf("game %d of %d complete", i+1, games)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	collector := metrics.NewCollector()
	for result := range results {
		collector.Add(result)
	}
	return collector, nil
}

// offsetSeed derives a distinct per-game seed so seeded batches stay
// reproducible without concurrent games replaying each other.
func offsetSeed(cfg searcher.Config, gameIndex int) searcher.Config {
	if cfg.Seed != 0 {
		cfg.Seed += uint64(gameIndex)
	}
	return cfg
}
