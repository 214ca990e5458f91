package searcher

import "fmt"

// Kind names an agent variant. The set is closed: agents are tagged
// variants behind the one Agent capability, not an open hierarchy.
type Kind string

const (
	KindRandom       Kind = "random"
	KindMinimax      Kind = "minimax"
	KindMCTS         Kind = "mcts"
	KindEnhancedMCTS Kind = "mcts-enhanced"
)

// Kinds lists the available agent kinds.
func Kinds() []Kind {
	return []Kind{KindRandom, KindMinimax, KindMCTS, KindEnhancedMCTS}
}

// Config selects and parameterizes an agent. Zero fields fall back to the
// per-kind defaults.
type Config struct {
	Kind        Kind
	Depth       int     // minimax
	Iterations  int     // mcts, mcts-enhanced
	Exploration float64 // mcts, mcts-enhanced
	Alpha       float64 // mcts-enhanced
	Seed        uint64  // random, mcts, mcts-enhanced
}

// NewAgent builds an agent from its configuration.
func NewAgent(cfg Config) (Agent, error) {
	switch cfg.Kind {
	case KindRandom:
		return NewRandom(cfg.Seed), nil
	case KindMinimax:
		return NewMinimax(cfg.Depth), nil
	case KindMCTS:
		return NewMCTS(searchOptions(cfg)...), nil
	case KindEnhancedMCTS:
		return NewEnhancedMCTS(searchOptions(cfg)...), nil
	default:
		return nil, fmt.Errorf("unknown agent kind: %q", cfg.Kind)
	}
}

func searchOptions(cfg Config) []Option {
	options := []Option{}
	if cfg.Iterations > 0 {
		options = append(options, WithIterations(cfg.Iterations))
	}
	if cfg.Exploration > 0 {
		options = append(options, WithExploration(cfg.Exploration))
	}
	if cfg.Alpha > 0 {
		options = append(options, WithAlpha(cfg.Alpha))
	}
	if cfg.Seed != 0 {
		options = append(options, WithSeed(cfg.Seed))
	}
	return options
}
