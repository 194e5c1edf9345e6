package experiments

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pacsearch/config"
	"pacsearch/engine"
	"pacsearch/experiments/metrics"
	"pacsearch/game"
	"pacsearch/searcher"
	"pacsearch/searcher/agent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDepthSweep(t *testing.T) {
	got := DepthSweep([]agent.Strategy{agent.Minimax, agent.AlphaBeta, agent.Reflex}, []int{1, 3}, "better")

	require.Equal(t, []metrics.AgentConfig{
		{ID: 1, Strategy: "minimax", Depth: 1, Evaluation: "better"},
		{ID: 2, Strategy: "minimax", Depth: 3, Evaluation: "better"},
		{ID: 3, Strategy: "alphabeta", Depth: 1, Evaluation: "better"},
		{ID: 4, Strategy: "alphabeta", Depth: 3, Evaluation: "better"},
		{ID: 5, Strategy: "reflex"},
	}, got)
}

func TestRun(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1, Strategy: "minimax", Depth: 1}, {ID: 2, Strategy: "reflex"}}

	t.Run("recording games and moves", func(t *testing.T) {
		calls := 0
		runner := func(config metrics.AgentConfig, index int) (engine.Result, error) {
			calls++
			res := engine.Result{ID: uuid.New(), Won: index == 0, Score: float64(10 * config.ID), Moves: 2}
			res.Metrics = []searcher.MoveMetrics{{Nodes: 5}, {Nodes: 7}}
			if index == 2 {
				return res, engine.ErrMaxMoves
			}
			return res, nil
		}

		results, err := Run("fake", configs, 3, runner)

		require.NoError(t, err)
		require.Equal(t, 6, calls)
		require.Len(t, results.GameRecords, 6)
		require.Len(t, results.MoveRecords, 12)
		require.True(t, results.GameRecords[2].Truncated, "Move limit games are kept")
		require.False(t, results.GameRecords[1].Truncated)
		require.Equal(t, 2, results.GameRecords[3].Agent)
		require.Equal(t, 2, results.MoveRecords[1].Step)
		require.Equal(t, results.GameRecords[0].ID, results.MoveRecords[0].Game)

		summaries := metrics.Summarize(results.GameRecords)
		require.Len(t, summaries, 2)
		require.InDelta(t, 1.0/3.0, summaries[0].WinRate, 1e-9)
	})

	t.Run("aborting on other errors", func(t *testing.T) {
		boom := errors.New("boom")
		runner := func(metrics.AgentConfig, int) (engine.Result, error) { return engine.Result{}, boom }

		_, err := Run("fake", configs, 2, runner)

		require.True(t, errors.Is(err, boom))
	})
}

func TestLocalRunner(t *testing.T) {
	l, err := game.NamedLayout("testClassic")
	require.NoError(t, err)
	runner := LocalRunner(l, 7, 30, nil)

	results, err := Run("local", DepthSweep([]agent.Strategy{agent.AlphaBeta, agent.Reflex}, []int{1}, ""), 2, runner)

	require.NoError(t, err)
	require.Len(t, results.GameRecords, 4)
	for _, r := range results.GameRecords[:2] {
		require.NotEqual(t, uuid.Nil, r.ID)
		require.Positive(t, r.Moves)
	}
	require.NotEmpty(t, results.MoveRecords, "Search agents report metrics")

	dir, err := results.Save(t.TempDir())
	require.NoError(t, err)
	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv", "summary.csv"} {
		_, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err, file)
	}
}

func TestRunDepthExperiment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacsearch.yaml")
	out := t.TempDir()
	content := "search:\n  strategy: expectimax\n  evaluation: better\n" +
		"engine:\n  layout: testClassic\n  max_moves: 20\n" +
		"experiments:\n  games: 1\n  depths: [1]\n  output_dir: " + out + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	l, err := config.Load(path)
	require.NoError(t, err)

	dir, err := RunDepthExperiment(l.Config())

	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "depth_sweep"), filepath.Dir(dir))
	summary, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	require.NoError(t, err)
	require.Contains(t, string(summary), "agent,games,wins")
}
