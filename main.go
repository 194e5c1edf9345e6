package main

import (
	"flag"
	"os"
	"time"

	"pacsearch/config"
	"pacsearch/engine"
	"pacsearch/experiments"
	"pacsearch/game"
	"pacsearch/searcher"
	"pacsearch/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "game", "What to run: game or experiment")
	strategy := flag.String("strategy", "", "Pacman strategy: minimax, alphabeta, expectimax or reflex")
	depth := flag.String("depth", "", "Search depth in full agent cycles")
	eval := flag.String("eval", "", "Evaluation function name")
	trace := flag.String("trace", "", "Write the search tree of the last decision as DOT to this path")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	loader, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := applyFlags(loader, *strategy, *depth, *eval); err != nil {
		log.Fatal().Err(err).Msg("Invalid flags")
	}
	c := loader.Config()
	setupLogging(c.Log)
	if *watch {
		loader.Watch(func(c *config.Config) { setupLogging(c.Log) })
	}

	switch *mode {
	case "game":
		err = runGame(loader, *trace)
	case "experiment":
		var dir string
		dir, err = experiments.RunDepthExperiment(c)
		if err == nil {
			log.Info().Str("dir", dir).Msg("Experiment results written")
		}
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}
}

func applyFlags(loader *config.Loader, strategy, depth, eval string) error {
	if strategy != "" {
		if err := loader.Set("search.strategy", strategy); err != nil {
			return err
		}
	}
	if depth != "" {
		d, err := agent.ParseDepth(depth)
		if err != nil {
			return err
		}
		if err := loader.Set("search.depth", d); err != nil {
			return err
		}
	}
	if eval != "" {
		if err := loader.Set("search.evaluation", eval); err != nil {
			return err
		}
	}
	return nil
}

func setupLogging(c config.LogConfig) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.Format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}

func runGame(loader *config.Loader, tracePath string) error {
	c := loader.Config()
	strategy, agentConfig, err := loader.AgentConfig()
	if err != nil {
		return err
	}
	var tracer *searcher.Tracer
	if tracePath != "" {
		tracer = searcher.NewTracer()
		agentConfig.Tracer = tracer
	}
	pacman, err := agent.New(strategy, agentConfig)
	if err != nil {
		return err
	}

	layout, err := game.NamedLayout(c.Engine.Layout)
	if err != nil {
		return err
	}
	e := &engine.Local{
		Pacman:   pacman,
		Ghosts:   engine.RandomGhosts(len(layout.Ghosts), c.Engine.Seed),
		MaxMoves: c.Engine.MaxMoves,
	}

	log.Info().Msgf("%s agent playing %s\n%s", strategy, c.Engine.Layout, layout)
	res, err := e.Run(game.NewGameState(layout))
	if err != nil && !errors.Is(err, engine.ErrMaxMoves) {
		return err
	}
	log.Info().
		Bool("won", res.Won).
		Float64("score", res.Score).
		Int("moves", res.Moves).
		Dur("duration", res.Duration()).
		Msg("Result")

	if tracer != nil {
		dot, err := tracer.ToDot()
		if err != nil {
			return errors.Wrap(err, "rendering search tree")
		}
		if err := os.WriteFile(tracePath, []byte(dot), 0644); err != nil {
			return errors.Wrap(err, "writing search tree")
		}
		log.Info().Str("path", tracePath).Int("nodes", tracer.Len()).Msg("Search tree written")
	}
	return nil
}
