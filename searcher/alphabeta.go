package searcher

import (
	"math"

	"pacsearch/game"
)

// AlphaBeta is minimax with alpha-beta pruning. It always picks the same action as
// Minimax and expands at most as many nodes.
//
// Pruning is strict: a maximizer stops once its value exceeds beta and a minimizer
// once its value drops below alpha, so equal values are always expanded.
type AlphaBeta struct {
	search
}

func NewAlphaBeta(options ...Option) (*AlphaBeta, error) {
	s, err := newSearch("alphabeta", options)
	if err != nil {
		return nil, err
	}
	return &AlphaBeta{search: s}, nil
}

func (ab *AlphaBeta) BestAction(state game.State) (game.Action, error) {
	return ab.run(state, func(actions []game.Action) (game.Action, float64, error) {
		alpha, beta := math.Inf(-1), math.Inf(1)
		bestAction, best := game.Stop, math.Inf(-1)
		for _, action := range actions {
			v, err := ab.advance(state, 0, game.Pacman, action, ab.bounded(alpha, beta))
			if err != nil {
				return "", 0, err
			}
			if v > best {
				bestAction, best = action, v
			}
			alpha = math.Max(alpha, best)
		}
		return bestAction, best, nil
	})
}

// Value returns the minimax value of state with agent to move at depth, given
// that the caller already has alpha guaranteed for Pacman and beta for the ghosts.
func (ab *AlphaBeta) Value(state game.State, depth, agent int, alpha, beta float64) (float64, error) {
	actions, value, done := ab.expand(state, agent)
	if done {
		return value, nil
	}

	if agent == game.Pacman {
		best := math.Inf(-1)
		for i, action := range actions {
			v, err := ab.advance(state, depth, agent, action, ab.bounded(alpha, beta))
			if err != nil {
				return 0, err
			}
			best = math.Max(best, v)
			if best > beta {
				ab.metrics.AddPrunes(len(actions) - i - 1)
				return best, nil
			}
			alpha = math.Max(alpha, best)
		}
		return best, nil
	}

	worst := math.Inf(1)
	for i, action := range actions {
		v, err := ab.advance(state, depth, agent, action, ab.bounded(alpha, beta))
		if err != nil {
			return 0, err
		}
		worst = math.Min(worst, v)
		if worst < alpha {
			ab.metrics.AddPrunes(len(actions) - i - 1)
			return worst, nil
		}
		beta = math.Min(beta, worst)
	}
	return worst, nil
}

// bounded binds the current window for the child about to be searched.
func (ab *AlphaBeta) bounded(alpha, beta float64) nodeFn {
	return func(state game.State, depth, agent int) (float64, error) {
		return ab.Value(state, depth, agent, alpha, beta)
	}
}
