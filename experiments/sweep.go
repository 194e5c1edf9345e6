package experiments

import (
	"pacsearch/config"
	"pacsearch/experiments/metrics"
	"pacsearch/game"
	"pacsearch/searcher/agent"

	"github.com/rs/zerolog/log"
)

// DepthSweep pairs every search strategy with every depth. The reflex strategy
// has no depth and gets a single config with its default evaluation. IDs start
// at 1 in enumeration order.
func DepthSweep(strategies []agent.Strategy, depths []int, evaluation string) []metrics.AgentConfig {
	var configs []metrics.AgentConfig
	add := func(s agent.Strategy, depth int, eval string) {
		configs = append(configs, metrics.AgentConfig{
			ID:         len(configs) + 1,
			Strategy:   s.String(),
			Depth:      depth,
			Evaluation: eval,
		})
	}
	for _, s := range strategies {
		if s == agent.Reflex {
			add(s, 0, "")
			continue
		}
		for _, depth := range depths {
			add(s, depth, evaluation)
		}
	}
	return configs
}

// RunDepthExperiment sweeps the configured search strategy over the configured
// depths, compares it with alpha-beta and the reflex agent, and saves the results.
func RunDepthExperiment(c *config.Config) (string, error) {
	layout, err := game.NamedLayout(c.Engine.Layout)
	if err != nil {
		return "", err
	}
	strategy, err := agent.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return "", err
	}

	strategies := []agent.Strategy{strategy}
	if strategy != agent.AlphaBeta && strategy != agent.Reflex {
		strategies = append(strategies, agent.AlphaBeta)
	}
	if strategy != agent.Reflex {
		strategies = append(strategies, agent.Reflex)
	}
	configs := DepthSweep(strategies, c.Experiments.Depths, c.Search.Evaluation)

	weights := c.Evaluation.Weights.Weights()
	runner := LocalRunner(layout, c.Engine.Seed, c.Engine.MaxMoves, &weights)
	results, err := Run("depth_sweep", configs, c.Experiments.Games, runner)
	if err != nil {
		return "", err
	}

	for _, s := range metrics.Summarize(results.GameRecords) {
		log.Info().
			Int("agent", s.Agent).
			Float64("win_rate", s.WinRate).
			Float64("mean_score", s.MeanScore).
			Float64("std_score", s.StdScore).
			Msg("summary")
	}
	return results.Save(c.Experiments.OutputDir)
}
