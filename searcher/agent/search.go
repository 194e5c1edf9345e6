package agent

import (
	"pacsearch/game"
	"pacsearch/searcher"

	"github.com/pkg/errors"
)

type searchStrategy interface {
	searcher.Searcher
	LastMetrics() searcher.MoveMetrics
}

// SearchAgent plays the action chosen by a depth-limited adversarial search.
type SearchAgent struct {
	strategy Strategy
	search   searchStrategy
}

// NewSearchAgent resolves the evaluation function once, so an unknown name fails
// here rather than in the middle of a game.
func NewSearchAgent(strategy Strategy, cfg Config) (*SearchAgent, error) {
	evaluate, err := cfg.evaluation()
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithDepth(cfg.depth()),
		searcher.WithEvaluationFn(evaluate),
	}
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	if cfg.Tracer != nil {
		options = append(options, searcher.WithTracer(cfg.Tracer))
	}

	var s searchStrategy
	switch strategy {
	case Minimax:
		s, err = searcher.NewMinimax(options...)
	case AlphaBeta:
		s, err = searcher.NewAlphaBeta(options...)
	case Expectimax:
		s, err = searcher.NewExpectimax(options...)
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%s is not a search strategy", strategy)
	}
	if err != nil {
		return nil, err
	}
	return &SearchAgent{strategy: strategy, search: s}, nil
}

func NewMinimaxAgent(cfg Config) (*SearchAgent, error) {
	return NewSearchAgent(Minimax, cfg)
}

func NewAlphaBetaAgent(cfg Config) (*SearchAgent, error) {
	return NewSearchAgent(AlphaBeta, cfg)
}

func NewExpectimaxAgent(cfg Config) (*SearchAgent, error) {
	return NewSearchAgent(Expectimax, cfg)
}

func (a *SearchAgent) ChooseAction(state game.State) (game.Action, error) {
	return a.search.BestAction(state)
}

func (a *SearchAgent) Strategy() Strategy { return a.strategy }

// LastMetrics returns the metrics of the most recent decision.
func (a *SearchAgent) LastMetrics() searcher.MoveMetrics {
	return a.search.LastMetrics()
}
