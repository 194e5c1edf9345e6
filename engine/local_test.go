package engine

import (
	"errors"
	"testing"

	"pacsearch/game"
	"pacsearch/searcher/agent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixedAgent plays the same action every turn.
type fixedAgent game.Action

func (a fixedAgent) ChooseAction(game.State) (game.Action, error) { return game.Action(a), nil }

func always(action game.Action) GhostFunc {
	return func(game.State, int) (game.Action, error) { return action, nil }
}

func TestLocalRun(t *testing.T) {
	t.Run("eating the last food wins", func(t *testing.T) {
		state := game.NewGameState(game.MustBuildLayout(
			"%%%%",
			"%P.%",
			"%%%%",
		))
		e := &Local{Pacman: fixedAgent(game.East)}

		res, err := e.Run(state)

		require.NoError(t, err)
		require.True(t, res.Won)
		require.False(t, res.Lost)
		require.Equal(t, 509.0, res.Score)
		require.Equal(t, 1, res.Moves)
		require.Equal(t, []Update{{Agent: 0, Action: game.East, Score: 509}}, res.History)
		require.NotEqual(t, uuid.Nil, res.ID)
		require.False(t, res.End.Before(res.Start))
	})

	t.Run("a ghost catching Pacman loses", func(t *testing.T) {
		state := game.NewGameState(game.MustBuildLayout(
			"%%%%%",
			"%PG.%",
			"%%%%%",
		))
		e := &Local{Pacman: fixedAgent(game.Stop), Ghosts: []GhostMover{always(game.West)}}

		res, err := e.Run(state)

		require.NoError(t, err)
		require.True(t, res.Lost)
		require.Equal(t, -501.0, res.Score)
		require.Equal(t, 1, res.Moves)
		require.Len(t, res.History, 2)
	})

	t.Run("stopping at the move limit", func(t *testing.T) {
		state := game.NewGameState(game.MustBuildLayout(
			"%%%%%",
			"%P .%",
			"%%%%%",
		))
		e := &Local{Pacman: fixedAgent(game.Stop), MaxMoves: 3}

		res, err := e.Run(state)

		require.True(t, errors.Is(err, ErrMaxMoves))
		require.False(t, res.Won)
		require.Equal(t, 3, res.Moves)
		require.Equal(t, -3.0, res.Score)
	})

	t.Run("ghost movers must match the layout", func(t *testing.T) {
		l, err := game.NamedLayout("testClassic")
		require.NoError(t, err)

		_, err = (&Local{Pacman: fixedAgent(game.Stop)}).Run(game.NewGameState(l))

		require.True(t, errors.Is(err, ErrGhostCount))
	})

	t.Run("illegal actions abort the game", func(t *testing.T) {
		state := game.NewGameState(game.MustBuildLayout(
			"%%%%%",
			"%P .%",
			"%%%%%",
		))
		e := &Local{Pacman: fixedAgent(game.North)}

		_, err := e.Run(state)

		require.True(t, errors.Is(err, game.ErrIllegalAction))
	})

	t.Run("ghost errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		state := game.NewGameState(game.MustBuildLayout(
			"%%%%%%",
			"%P .G%",
			"%%%%%%",
		))
		e := &Local{
			Pacman: fixedAgent(game.Stop),
			Ghosts: []GhostMover{GhostFunc(func(game.State, int) (game.Action, error) { return "", boom })},
		}

		_, err := e.Run(state)

		require.True(t, errors.Is(err, boom))
	})

	t.Run("search agent against random ghosts", func(t *testing.T) {
		l, err := game.NamedLayout("testClassic")
		require.NoError(t, err)
		pacman, err := agent.NewAlphaBetaAgent(agent.Config{EvaluationFn: "better", Depth: 2, Metrics: true})
		require.NoError(t, err)
		e := &Local{Pacman: pacman, Ghosts: RandomGhosts(len(l.Ghosts), 42), MaxMoves: 100}

		res, err := e.Run(game.NewGameState(l))

		if err != nil {
			require.True(t, errors.Is(err, ErrMaxMoves), "unexpected error: %v", err)
		} else {
			require.True(t, res.Won || res.Lost)
		}
		decisions := 0
		for _, u := range res.History {
			if u.Agent == game.Pacman {
				decisions++
			}
		}
		require.Equal(t, res.Moves, decisions)
		require.Len(t, res.Metrics, decisions, "One metrics entry per Pacman decision")
		for _, m := range res.Metrics {
			require.Equal(t, 2, m.Depth)
		}
	})
}

func TestRandomGhost(t *testing.T) {
	l, err := game.NamedLayout("minimaxClassic")
	require.NoError(t, err)
	state := game.NewGameState(l)

	a, b := NewRandomGhost(3), NewRandomGhost(3)
	for i := 0; i < 100; i++ {
		for ghost := 1; ghost < state.NumAgents(); ghost++ {
			x, err := a.Move(state, ghost)
			require.NoError(t, err)
			require.Contains(t, state.LegalActions(ghost), x)
			y, err := b.Move(state, ghost)
			require.NoError(t, err)
			require.Equal(t, x, y, "Same seed should replay the same moves")
		}
	}
}
