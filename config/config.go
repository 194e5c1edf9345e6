package config

import (
	"fmt"
	"strings"
	"sync"

	"pacsearch/game"
	"pacsearch/meta"
	"pacsearch/searcher/agent"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const envPrefix = "PACSEARCH"

// Config holds all configuration for the application
type Config struct {
	Search      SearchConfig      `mapstructure:"search"`
	Evaluation  EvaluationConfig  `mapstructure:"evaluation"`
	Engine      EngineConfig      `mapstructure:"engine"`
	Experiments ExperimentsConfig `mapstructure:"experiments"`
	Log         LogConfig         `mapstructure:"log"`
}

// SearchConfig selects the Pacman agent
type SearchConfig struct {
	Strategy   string `mapstructure:"strategy"`
	Depth      int    `mapstructure:"depth"`
	Evaluation string `mapstructure:"evaluation"` // Empty selects the strategy default
	Seed       uint64 `mapstructure:"seed"`
	Metrics    bool   `mapstructure:"metrics"`
}

// EvaluationConfig holds the better evaluation weights
type EvaluationConfig struct {
	Weights WeightsConfig `mapstructure:"weights"`
}

type WeightsConfig struct {
	Score         float64 `mapstructure:"score"`
	FoodDistance  float64 `mapstructure:"food_distance"`
	FoodCount     float64 `mapstructure:"food_count"`
	CapsuleCount  float64 `mapstructure:"capsule_count"`
	GhostDistance float64 `mapstructure:"ghost_distance"`
	ScaredGhost   float64 `mapstructure:"scared_ghost"`
}

// EngineConfig holds game loop settings
type EngineConfig struct {
	Layout   string `mapstructure:"layout"`
	Ghosts   string `mapstructure:"ghosts"`
	MaxMoves int    `mapstructure:"max_moves"`
	Seed     uint64 `mapstructure:"seed"`
}

// ExperimentsConfig holds batch experiment settings
type ExperimentsConfig struct {
	Games     int    `mapstructure:"games"`
	Depths    []int  `mapstructure:"depths"`
	OutputDir string `mapstructure:"output_dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Ghost policies understood by the engine
const RandomGhosts = "random"

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("search.strategy", agent.Minimax.String())
	v.SetDefault("search.depth", meta.DefaultDepth)
	v.SetDefault("search.evaluation", "")
	v.SetDefault("search.seed", 0)
	v.SetDefault("search.metrics", false)

	w := game.DefaultWeights
	v.SetDefault("evaluation.weights.score", w.Score)
	v.SetDefault("evaluation.weights.food_distance", w.FoodDistance)
	v.SetDefault("evaluation.weights.food_count", w.FoodCount)
	v.SetDefault("evaluation.weights.capsule_count", w.CapsuleCount)
	v.SetDefault("evaluation.weights.ghost_distance", w.GhostDistance)
	v.SetDefault("evaluation.weights.scared_ghost", w.ScaredGhost)

	v.SetDefault("engine.layout", meta.DefaultLayout)
	v.SetDefault("engine.ghosts", RandomGhosts)
	v.SetDefault("engine.max_moves", meta.MAX_MOVES)
	v.SetDefault("engine.seed", 1)

	v.SetDefault("experiments.games", meta.GAMES)
	v.SetDefault("experiments.depths", []int{1, 2, 3})
	v.SetDefault("experiments.output_dir", "results")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Loader owns a viper instance and the configuration decoded from it.
type Loader struct {
	v   *viper.Viper
	mu  sync.RWMutex
	cfg *Config
}

// Load reads defaults, the config file at path and PACSEARCH_* environment
// variables, in increasing priority. An empty path looks for pacsearch.yaml in
// the working directory and ./config, and is fine if none exists.
func Load(path string) (*Loader, error) {
	v := viper.New()
	setViperDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pacsearch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
		log.Debug().Msg("No config file found, using defaults")
	}

	l := &Loader{v: v}
	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}
	l.cfg = cfg
	return l, nil
}

func (l *Loader) decode() (*Config, error) {
	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config into struct")
	}
	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Config returns a copy of the current configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c := *l.cfg
	c.Experiments.Depths = append([]int(nil), l.cfg.Experiments.Depths...)
	return &c
}

// ConfigFile returns the path of the loaded config file, if any.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Set overrides a single key, as done for command-line flags. The previous
// configuration is kept when the new value does not validate.
func (l *Loader) Set(key string, value any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	previous := l.v.Get(key)
	l.v.Set(key, value)
	cfg, err := l.decode()
	if err != nil {
		l.v.Set(key, previous)
		return err
	}
	l.cfg = cfg
	return nil
}

// AgentConfig translates the search section into the agent it describes.
func (l *Loader) AgentConfig() (agent.Strategy, agent.Config, error) {
	c := l.Config()
	strategy, err := agent.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return 0, agent.Config{}, err
	}
	weights := c.Evaluation.Weights.Weights()
	return strategy, agent.Config{
		EvaluationFn: c.Search.Evaluation,
		Depth:        c.Search.Depth,
		Weights:      &weights,
		Seed:         c.Search.Seed,
		Metrics:      c.Search.Metrics,
	}, nil
}

// Watch reloads the config file whenever it changes and hands every valid
// new configuration to onChange. Invalid edits are logged and ignored.
func (l *Loader) Watch(onChange func(*Config)) {
	if l.v.ConfigFileUsed() == "" {
		log.Warn().Msg("No config file loaded, nothing to watch")
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		l.mu.Lock()
		cfg, err := l.decode()
		if err != nil {
			l.mu.Unlock()
			log.Warn().Err(err).Str("file", e.Name).Msg("Ignoring invalid config change")
			return
		}
		l.cfg = cfg
		l.mu.Unlock()

		log.Info().Str("file", e.Name).Msg("Config reloaded")
		if onChange != nil {
			onChange(l.Config())
		}
	})
	l.v.WatchConfig()
}

func (w WeightsConfig) Weights() game.Weights {
	return game.Weights{
		Score:         w.Score,
		FoodDistance:  w.FoodDistance,
		FoodCount:     w.FoodCount,
		CapsuleCount:  w.CapsuleCount,
		GhostDistance: w.GhostDistance,
		ScaredGhost:   w.ScaredGhost,
	}
}

// Validate reports every invalid value at once.
func Validate(c *Config) error {
	var errs error
	fail := func(format string, args ...any) {
		errs = multierror.Append(errs, fmt.Errorf(format, args...))
	}

	strategy, err := agent.ParseStrategy(c.Search.Strategy)
	if err != nil {
		fail("search.strategy: %v", err)
	}
	if c.Search.Depth < 1 {
		fail("search.depth must be at least 1, got %d", c.Search.Depth)
	}
	if name := c.Search.Evaluation; name != "" && err == nil {
		if strategy == agent.Reflex {
			_, err = game.LookupActionEvaluation(name)
		} else {
			_, err = game.LookupEvaluation(name)
		}
		if err != nil {
			fail("search.evaluation: %v", err)
		}
	}

	if _, err := game.NamedLayout(c.Engine.Layout); err != nil {
		fail("engine.layout: %v", err)
	}
	if c.Engine.Ghosts != RandomGhosts {
		fail("engine.ghosts must be %q, got %q", RandomGhosts, c.Engine.Ghosts)
	}
	if c.Engine.MaxMoves <= 0 {
		fail("engine.max_moves must be positive")
	}

	if c.Experiments.Games <= 0 {
		fail("experiments.games must be positive")
	}
	if len(c.Experiments.Depths) == 0 {
		fail("experiments.depths must not be empty")
	}
	for _, d := range c.Experiments.Depths {
		if d < 1 {
			fail("experiments.depths must all be at least 1, got %d", d)
		}
	}
	if c.Experiments.OutputDir == "" {
		fail("experiments.output_dir must be set")
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		fail("log.level: %v", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		fail("log.format must be console or json, got %q", c.Log.Format)
	}
	return errs
}
