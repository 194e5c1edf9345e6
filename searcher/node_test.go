package searcher

import (
	"fmt"

	"pacsearch/game"

	"golang.org/x/exp/rand"
)

// mockState is a hand-built game tree. Turn order is encoded by the tree shape,
// so the agent argument is only used for counting.
type mockState struct {
	agents    int
	score     float64
	win, lose bool
	moves     []game.Action
	children  []*mockState
	expanded  *int // Successor calls, shared across the whole tree
}

func (m *mockState) IsWin() bool    { return m.win }
func (m *mockState) IsLose() bool   { return m.lose }
func (m *mockState) Score() float64 { return m.score }
func (m *mockState) NumAgents() int { return m.agents }

func (m *mockState) LegalActions(agent int) []game.Action {
	return m.moves
}

func (m *mockState) Successor(agent int, action game.Action) (game.State, error) {
	for i, a := range m.moves {
		if a == action {
			if m.expanded != nil {
				*m.expanded++
			}
			return m.children[i], nil
		}
	}
	return nil, fmt.Errorf("agent %d: %w", agent, game.ErrIllegalAction)
}

func leaf(score float64) *mockState {
	return &mockState{score: score}
}

// tree builds an inner node whose children are reached by actions a0, a1, ...
func tree(children ...*mockState) *mockState {
	m := &mockState{children: children}
	for i := range children {
		m.moves = append(m.moves, game.Action(fmt.Sprintf("a%d", i)))
	}
	return m
}

// withAgents sets the agent count on every node of the tree and shares a
// Successor counter between them.
func withAgents(root *mockState, agents int) (*mockState, *int) {
	count := new(int)
	var walk func(*mockState)
	walk = func(m *mockState) {
		m.agents = agents
		m.expanded = count
		for _, c := range m.children {
			walk(c)
		}
	}
	walk(root)
	return root, count
}

// randomTree builds a complete tree with levels plies below root. Values are
// drawn from a small range so that ties are common.
func randomTree(rng *rand.Rand, levels, maxBranching int) *mockState {
	if levels == 0 {
		return leaf(float64(rng.Intn(5)))
	}
	if rng.Intn(12) == 0 {
		// Occasional early terminal
		return &mockState{score: float64(rng.Intn(5)), lose: true}
	}
	if rng.Intn(15) == 0 {
		// Occasional stuck agent
		return leaf(float64(rng.Intn(5)))
	}
	n := 1 + rng.Intn(maxBranching)
	children := make([]*mockState, n)
	for i := range children {
		children[i] = randomTree(rng, levels-1, maxBranching)
	}
	return tree(children...)
}

// countingEval returns the score and counts how often it was called.
func countingEval() (game.Evaluate, *int) {
	calls := new(int)
	return func(s game.State) float64 {
		*calls++
		return s.Score()
	}, calls
}
