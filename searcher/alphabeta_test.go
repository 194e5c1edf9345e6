package searcher

import (
	"testing"

	"pacsearch/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestAlphaBetaBestAction(t *testing.T) {
	t.Run("pruning the textbook tree", func(t *testing.T) {
		ab, err := NewAlphaBeta(WithDepth(1), WithMetrics())
		require.NoError(t, err)

		got, err := ab.BestAction(classicTree())

		require.NoError(t, err)
		require.Equal(t, game.Action("a0"), got)
		require.Equal(t, 3.0, ab.LastMetrics().Value)
		require.Equal(t, int64(4), ab.LastMetrics().Nodes)
		require.Equal(t, int64(7), ab.LastMetrics().Evaluations, "Leaves 4 and 6 should be pruned")
		require.Equal(t, int64(2), ab.LastMetrics().Prunes)
	})

	t.Run("pruning across several ghosts", func(t *testing.T) {
		ab, err := NewAlphaBeta(WithDepth(1), WithMetrics())
		require.NoError(t, err)

		got, err := ab.BestAction(threeAgentTree())

		require.NoError(t, err)
		require.Equal(t, game.Action("a0"), got)
		require.Equal(t, 5.0, ab.LastMetrics().Value)
		require.Equal(t, int64(6), ab.LastMetrics().Nodes, "The second ghost subtree of a1 is never expanded")
		require.Equal(t, int64(5), ab.LastMetrics().Evaluations)
	})

	t.Run("equal values are not pruned", func(t *testing.T) {
		// a1 reaches exactly alpha after its first leaf; strict pruning keeps searching
		root, _ := withAgents(tree(
			tree(leaf(3)),
			tree(leaf(3), leaf(1)),
		), 2)
		ab, err := NewAlphaBeta(WithDepth(1), WithMetrics())
		require.NoError(t, err)

		got, err := ab.BestAction(root)

		require.NoError(t, err)
		require.Equal(t, game.Action("a0"), got)
		require.Equal(t, int64(3), ab.LastMetrics().Evaluations)
		require.Equal(t, int64(0), ab.LastMetrics().Prunes)
	})

	t.Run("Value with a window that excludes the result", func(t *testing.T) {
		ab, err := NewAlphaBeta(WithDepth(1))
		require.NoError(t, err)
		ghost := classicTree().children[0]

		v, err := ab.Value(ghost, 0, 1, 5, 100)

		require.NoError(t, err)
		require.Equal(t, 3.0, v, "A minimizer below alpha returns at its first value under alpha")
	})
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	type shape struct{ agents, depth int }
	shapes := []shape{{1, 1}, {1, 3}, {2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {4, 1}}

	for _, sh := range shapes {
		for seed := uint64(1); seed <= 100; seed++ {
			rng := rand.New(rand.NewSource(seed))
			root, _ := withAgents(randomTree(rng, sh.agents*sh.depth, 3), sh.agents)

			m, err := NewMinimax(WithDepth(sh.depth), WithMetrics())
			require.NoError(t, err)
			ab, err := NewAlphaBeta(WithDepth(sh.depth), WithMetrics())
			require.NoError(t, err)

			want, err := m.BestAction(root)
			require.NoError(t, err)
			got, err := ab.BestAction(root)
			require.NoError(t, err)

			require.Equal(t, want, got, "agents %d depth %d seed %d", sh.agents, sh.depth, seed)
			require.Equal(t, m.LastMetrics().Value, ab.LastMetrics().Value, "agents %d depth %d seed %d", sh.agents, sh.depth, seed)
			require.LessOrEqual(t, ab.LastMetrics().Nodes, m.LastMetrics().Nodes)
			require.LessOrEqual(t, ab.LastMetrics().Evaluations, m.LastMetrics().Evaluations)
		}
	}
}

func TestAlphaBetaMatchesMinimaxOnLayouts(t *testing.T) {
	cases := []struct {
		layout string
		depths []int
	}{
		{"testClassic", []int{1, 2, 3}},
		{"minimaxClassic", []int{1, 2}},
	}

	for _, c := range cases {
		t.Run(c.layout, func(t *testing.T) {
			l, err := game.NamedLayout(c.layout)
			require.NoError(t, err)

			for _, depth := range c.depths {
				evaluate := game.NewBetterEvaluation(game.DefaultWeights)
				m, err := NewMinimax(WithDepth(depth), WithEvaluationFn(evaluate), WithMetrics())
				require.NoError(t, err)
				ab, err := NewAlphaBeta(WithDepth(depth), WithEvaluationFn(evaluate), WithMetrics())
				require.NoError(t, err)

				state := game.NewGameState(l)
				want, err := m.BestAction(state)
				require.NoError(t, err)
				got, err := ab.BestAction(state)
				require.NoError(t, err)

				require.Equal(t, want, got, "depth %d", depth)
				require.Equal(t, m.LastMetrics().Value, ab.LastMetrics().Value, "depth %d", depth)
				require.LessOrEqual(t, ab.LastMetrics().Nodes, m.LastMetrics().Nodes, "depth %d", depth)
			}
		})
	}
}
