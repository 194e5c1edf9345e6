package searcher

import (
	"math"

	"pacsearch/game"
	"pacsearch/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrInvalidDepth = errors.New("search depth must be at least 1")

// Searcher picks an action for Pacman (agent 0) in a state.
type Searcher interface {
	BestAction(state game.State) (game.Action, error)
}

type Option func(s *search)

// search holds what every strategy shares: configuration, metrics, tracing and
// the turn-alternation protocol in turn.go.
type search struct {
	name     string
	depth    int
	evaluate game.Evaluate
	metrics  MetricsCollector
	tracer   *Tracer
	last     MoveMetrics
}

func WithDepth(depth int) Option {
	return func(s *search) {
		s.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = NewMetricsCollector()
	}
}

// WithTracer records every searched node into tracer, replacing its previous tree.
func WithTracer(tracer *Tracer) Option {
	return func(s *search) {
		s.tracer = tracer
	}
}

func newSearch(name string, options []Option) (search, error) {
	s := search{ // Default values
		name:     name,
		depth:    meta.DefaultDepth,
		evaluate: game.ScoreEvaluation,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.depth < 1 {
		return search{}, errors.Wrapf(ErrInvalidDepth, "got %d", s.depth)
	}
	return s, nil
}

// Depth is the number of full agent cycles searched below the root.
func (s *search) Depth() int { return s.depth }

// LastMetrics returns the metrics of the most recent BestAction call.
func (s *search) LastMetrics() MoveMetrics { return s.last }

// run wraps one root decision with metrics, tracing and logging. choose is only
// called when Pacman has at least one legal action in a non-terminal state.
func (s *search) run(state game.State, choose func(actions []game.Action) (game.Action, float64, error)) (game.Action, error) {
	s.metrics.Start(s.depth)
	s.tracer.reset()
	s.tracer.enter(game.Pacman, 0, "")
	s.metrics.AddNode()

	action, value := game.Stop, state.Score()
	actions := state.LegalActions(game.Pacman)
	if !game.IsTerminal(state) && len(actions) > 0 {
		var err error
		action, value, err = choose(actions)
		if err != nil {
			s.tracer.leave(math.NaN())
			return "", errors.Wrapf(err, "%s search", s.name)
		}
	}
	s.tracer.leave(value)

	s.last = s.metrics.Complete()
	s.last.Depth = s.depth
	s.last.Action = action
	s.last.Value = value

	log.Debug().
		Str("strategy", s.name).
		Int("depth", s.depth).
		Str("action", string(action)).
		Float64("value", value).
		Int64("nodes", s.last.Nodes).
		Int64("evaluations", s.last.Evaluations).
		Dur("duration", s.last.Duration).
		Msg("search complete")
	return action, nil
}
