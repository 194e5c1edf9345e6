package searcher

import "pacsearch/game"

// Expectimax models every ghost as choosing uniformly at random among its legal actions.
type Expectimax struct {
	search
}

func NewExpectimax(options ...Option) (*Expectimax, error) {
	s, err := newSearch("expectimax", options)
	if err != nil {
		return nil, err
	}
	return &Expectimax{search: s}, nil
}

func (e *Expectimax) BestAction(state game.State) (game.Action, error) {
	return e.run(state, func(actions []game.Action) (game.Action, float64, error) {
		return e.maximize(state, 0, actions, e.Value)
	})
}

// Value returns the expectimax value of state with agent to move at depth.
func (e *Expectimax) Value(state game.State, depth, agent int) (float64, error) {
	actions, value, done := e.expand(state, agent)
	if done {
		return value, nil
	}
	if agent == game.Pacman {
		_, best, err := e.maximize(state, depth, actions, e.Value)
		return best, err
	}

	sum := 0.0
	for _, action := range actions {
		v, err := e.advance(state, depth, agent, action, e.Value)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	// expand guarantees at least one action
	return sum / float64(len(actions)), nil
}
