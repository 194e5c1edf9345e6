package searcher

import (
	"math"

	"pacsearch/game"

	"github.com/pkg/errors"
)

// nodeFn scores the node where agent is about to move at the given depth.
type nodeFn func(state game.State, depth, agent int) (float64, error)

// leaf scores a state that is not expanded. Terminal states keep their score.
func (s *search) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	if game.IsTerminal(state) {
		return state.Score()
	}
	return s.evaluate(state)
}

// advance plays action for agent and scores the resulting state. Depth only
// grows once every agent has moved; when that completes the last allowed cycle
// the successor is evaluated instead of handed back to Pacman.
func (s *search) advance(state game.State, depth, agent int, action game.Action, node nodeFn) (float64, error) {
	next, err := state.Successor(agent, action)
	if err != nil {
		return 0, errors.Wrapf(err, "expanding agent %d at depth %d", agent, depth)
	}

	nextAgent := (agent + 1) % state.NumAgents()
	nextDepth := depth
	if nextAgent == game.Pacman {
		nextDepth++
	}

	s.tracer.enter(nextAgent, nextDepth, action)
	var value float64
	if nextAgent == game.Pacman && nextDepth >= s.depth {
		value = s.leaf(next)
	} else {
		value, err = node(next, nextDepth, nextAgent)
	}
	s.tracer.leave(value)
	return value, err
}

// maximize returns Pacman's best action and its value. Only a strictly greater
// value replaces the current best, so ties keep the first action enumerated.
func (s *search) maximize(state game.State, depth int, actions []game.Action, node nodeFn) (game.Action, float64, error) {
	bestAction, best := game.Stop, math.Inf(-1)
	for _, action := range actions {
		value, err := s.advance(state, depth, game.Pacman, action, node)
		if err != nil {
			return "", 0, err
		}
		if value > best {
			bestAction, best = action, value
		}
	}
	return bestAction, best, nil
}

// expand is the common entry of every node: terminal states return their score,
// and a non-terminal state without legal actions is evaluated in place.
func (s *search) expand(state game.State, agent int) (actions []game.Action, value float64, done bool) {
	if game.IsTerminal(state) {
		return nil, state.Score(), true
	}
	s.metrics.AddNode()
	actions = state.LegalActions(agent)
	if len(actions) == 0 {
		return nil, s.leaf(state), true
	}
	return actions, 0, false
}
