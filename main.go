package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kalah/experiments"
	"kalah/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	random := searcher.Config{Kind: searcher.KindRandom}
	minimax := searcher.Config{Kind: searcher.KindMinimax, Depth: 4}
	mcts := searcher.Config{Kind: searcher.KindMCTS, Iterations: 500}
	enhanced := searcher.Config{Kind: searcher.KindEnhancedMCTS, Iterations: 1000, Alpha: 0.5}

	experiment := experiments.Experiment{
		Name: "agent_comparison",
		Matchups: []experiments.Matchup{
			{South: random, North: minimax},
			{South: random, North: mcts},
			{South: minimax, North: mcts},
			{South: minimax, North: enhanced},
			{South: mcts, North: enhanced},
		},
		Games:   30,
		Workers: 8,
	}

	if err := experiment.Run(); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
