package experiments

import (
	"pacsearch/engine"
	"pacsearch/experiments/metrics"
	"pacsearch/game"
	"pacsearch/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Runner plays game number index with the agent described by config.
type Runner func(config metrics.AgentConfig, index int) (engine.Result, error)

// Results holds every record produced by one experiment.
type Results struct {
	Name        string
	Configs     []metrics.AgentConfig
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Run plays games games for every config. Games stopped by the move limit are
// recorded as truncated; any other error aborts the experiment.
func Run(name string, configs []metrics.AgentConfig, games int, runner Runner) (*Results, error) {
	results := &Results{Name: name, Configs: configs}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), config)

		for i := 0; i < games; i++ {
			res, err := runner(config, i)
			truncated := errors.Is(err, engine.ErrMaxMoves)
			if err != nil && !truncated {
				return results, errors.Wrapf(err, "config %d game %d", config.ID, i+1)
			}
			results.add(config, res, truncated)

			log.Info().Msgf("completed config %d game %d of %d: won=%t score=%g", config.ID, i+1, games, res.Won, res.Score)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return results, nil
}

func (r *Results) add(config metrics.AgentConfig, res engine.Result, truncated bool) {
	r.GameRecords = append(r.GameRecords, metrics.GameRecord{
		ID:        res.ID,
		Agent:     config.ID,
		Won:       res.Won,
		Score:     res.Score,
		Moves:     res.Moves,
		StartTime: res.Start,
		EndTime:   res.End,
		Duration:  res.Duration(),
		Truncated: truncated,
	})
	for step, mm := range res.Metrics {
		r.MoveRecords = append(r.MoveRecords, metrics.MoveRecord{
			Game:        res.ID,
			Step:        step + 1,
			MoveMetrics: mm,
		})
	}
}

// Save writes configs, records and summaries under outputDir and returns the
// directory used.
func (r *Results) Save(outputDir string) (string, error) {
	writer, err := metrics.NewWriter(outputDir, r.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(r.Configs); err != nil {
		return "", errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(r.GameRecords); err != nil {
		return "", errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(r.MoveRecords); err != nil {
		return "", errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")
	if err := writer.WriteSummaries(metrics.Summarize(r.GameRecords)); err != nil {
		return "", errors.Wrap(err, "failed to write summaries")
	}
	return writer.Dir(), nil
}

// LocalRunner plays on layout against random ghosts. Game index i uses ghost
// seed seed+i so every config faces the same ghosts.
func LocalRunner(layout *game.Layout, seed uint64, maxMoves int, weights *game.Weights) Runner {
	return func(config metrics.AgentConfig, index int) (engine.Result, error) {
		strategy, err := agent.ParseStrategy(config.Strategy)
		if err != nil {
			return engine.Result{}, err
		}
		pacman, err := agent.New(strategy, agent.Config{
			EvaluationFn: config.Evaluation,
			Depth:        config.Depth,
			Weights:      weights,
			Seed:         seed + uint64(index) + 1,
			Metrics:      true,
		})
		if err != nil {
			return engine.Result{}, err
		}
		e := &engine.Local{
			Pacman:   pacman,
			Ghosts:   engine.RandomGhosts(len(layout.Ghosts), seed+uint64(index)*uint64(len(layout.Ghosts)+1)),
			MaxMoves: maxMoves,
		}
		return e.Run(game.NewGameState(layout))
	}
}
