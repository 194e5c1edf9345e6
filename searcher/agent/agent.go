package agent

import (
	"strings"

	"pacsearch/game"

	"github.com/pkg/errors"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type Agent interface {
	// ChooseAction returns Pacman's next action in state
	ChooseAction(state game.State) (game.Action, error)
}

type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
	Expectimax
	Reflex
)

var strategyNames = map[Strategy]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
	Reflex:     "reflex",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStrategy accepts a strategy name in any case; "alpha-beta" and
// "alpha_beta" are accepted for AlphaBeta.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for s, n := range strategyNames {
		if n == normalized {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// New builds the agent for strategy from cfg.
func New(strategy Strategy, cfg Config) (Agent, error) {
	switch strategy {
	case Minimax, AlphaBeta, Expectimax:
		return NewSearchAgent(strategy, cfg)
	case Reflex:
		return NewReflexAgent(cfg)
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%d", int(strategy))
	}
}
