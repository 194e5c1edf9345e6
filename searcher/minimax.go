package searcher

import (
	"math"

	"pacsearch/game"
)

// Minimax assumes every ghost plays the move that is worst for Pacman.
type Minimax struct {
	search
}

func NewMinimax(options ...Option) (*Minimax, error) {
	s, err := newSearch("minimax", options)
	if err != nil {
		return nil, err
	}
	return &Minimax{search: s}, nil
}

func (m *Minimax) BestAction(state game.State) (game.Action, error) {
	return m.run(state, func(actions []game.Action) (game.Action, float64, error) {
		return m.maximize(state, 0, actions, m.Value)
	})
}

// Value returns the minimax value of state with agent to move at depth.
func (m *Minimax) Value(state game.State, depth, agent int) (float64, error) {
	actions, value, done := m.expand(state, agent)
	if done {
		return value, nil
	}
	if agent == game.Pacman {
		_, best, err := m.maximize(state, depth, actions, m.Value)
		return best, err
	}

	worst := math.Inf(1)
	for _, action := range actions {
		v, err := m.advance(state, depth, agent, action, m.Value)
		if err != nil {
			return 0, err
		}
		worst = math.Min(worst, v)
	}
	return worst, nil
}
