package searcher

import (
	"math"
	"pegsolitaire/game"
	"testing"

	"github.com/stretchr/testify/require"
)

const W = game.Wall

// Three pegs: one line ends in the center, another ends on the edge, a third stalls.
var endgame = game.Board{
	{W, W, 0, 0, 0, W, W},
	{W, W, 1, 0, 0, W, W},
	{0, 0, 1, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{W, W, 0, 0, 0, W, W},
	{W, W, 0, 0, 0, W, W},
}

var endgame2 = game.Board{
	{W, W, 0, 0, 0, W, W},
	{W, W, 0, 0, 0, W, W},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0},
	{0, 1, 1, 0, 1, 0, 1},
	{W, W, 0, 0, 1, W, W},
	{W, W, 0, 0, 0, W, W},
}

var middlegame = game.Board{
	{W, W, 1, 0, 0, W, W},
	{W, W, 1, 0, 0, W, W},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 0},
	{0, 1, 0, 0, 1, 0, 1},
	{W, W, 0, 0, 1, W, W},
	{W, W, 0, 0, 0, W, W},
}

func centerPeg() game.Environment {
	b := game.EmptyBoard()
	b[game.Center.Y][game.Center.X] = game.Peg
	return game.FromBoard(b)
}

// optimum searches every line without memoization or symmetry reduction.
func optimum(env game.Environment, reward float64) float64 {
	actions := env.LegalActions()
	if len(actions) == 0 {
		if env.SolvedCenter() {
			return reward + CenterBonus
		}
		return reward
	}
	best := math.Inf(-1)
	for _, action := range actions {
		best = math.Max(best, optimum(env.Apply(action), reward+RemovedPeg))
	}
	return best
}

func apply(env game.Environment, actions ...game.Action) game.Environment {
	for _, action := range actions {
		env = env.Apply(action)
	}
	return env
}

func TestSolveTerminal(t *testing.T) {
	env := centerPeg()
	table, result := NewSolver().Solve(env)

	require.Equal(t, 1, table.Len())
	require.Equal(t, 1, result.Iterations)
	require.Equal(t, 1, result.Leaves)
	require.False(t, result.Exhausted)

	entry, ok := table.Entry(env.Key())
	require.True(t, ok)
	require.Equal(t, 31+CenterBonus, entry.Best, "31 pegs removed plus the center bonus")
	require.Equal(t, game.Encode(&env.Board), entry.Position)
}

func TestSolveEndgame(t *testing.T) {
	root := game.FromBoard(endgame)
	stalled := apply(root, game.Action{Point: game.Point{X: 2, Y: 2}, Jump: game.Up})
	line := apply(root, game.Action{Point: game.Point{X: 2, Y: 1}, Jump: game.Down})
	edge := apply(line, game.Action{Point: game.Point{X: 2, Y: 3}, Jump: game.Left})
	center := apply(line, game.Action{Point: game.Point{X: 1, Y: 3}, Jump: game.Right})

	t.Run("with explicit base reward", func(t *testing.T) {
		table, result := NewSolver(WithBaseReward(0)).Solve(root)

		require.Equal(t, 5, result.Iterations)
		require.Equal(t, 3, result.Leaves)
		require.False(t, result.Exhausted)
		require.Equal(t, 5, table.Len())

		expected := []struct {
			env  game.Environment
			want Entry
		}{
			{root, Entry{Visits: 3, Best: 2 + CenterBonus}},
			{stalled, Entry{Visits: 1, Best: 1}},
			{line, Entry{Visits: 2, Best: 2 + CenterBonus}},
			{edge, Entry{Visits: 1, Best: 2}},
			{center, Entry{Visits: 1, Best: 2 + CenterBonus}},
		}
		for _, e := range expected {
			got, ok := table.Entry(e.env.Key())
			require.True(t, ok, "missing position\n%s", e.env)
			require.Equal(t, e.want.Visits, got.Visits, "visits of\n%s", e.env)
			require.Equal(t, e.want.Best, got.Best, "best of\n%s", e.env)
		}
	})

	t.Run("base reward defaults to removed pegs", func(t *testing.T) {
		table, _ := NewSolver().Solve(root)

		best, ok := table.Best(root.Key())
		require.True(t, ok)
		require.Equal(t, 29+2+CenterBonus, best)
	})

	t.Run("custom center bonus", func(t *testing.T) {
		table, _ := NewSolver(WithBaseReward(0), WithCenterBonus(100)).Solve(root)

		best, _ := table.Best(root.Key())
		require.Equal(t, 102.0, best)
	})

	t.Run("stops when the budget runs out", func(t *testing.T) {
		table, result := NewSolver(WithBaseReward(0), WithBudget(2)).Solve(root)

		require.True(t, result.Exhausted)
		require.Equal(t, 2, result.Iterations)
		require.Equal(t, 1, result.Leaves)
		require.Equal(t, 2, table.Len(), "Partial table should keep what was found")

		best, ok := table.Best(root.Key())
		require.True(t, ok)
		require.Equal(t, 1.0, best)
	})

	t.Run("solver can be reused", func(t *testing.T) {
		solver := NewSolver(WithBaseReward(0), WithBudget(2))
		solver.Solve(root)
		_, result := solver.Solve(centerPeg())

		require.False(t, result.Exhausted)
		require.Equal(t, 1, result.Iterations)
	})
}

func TestSolveMatchesFullSearch(t *testing.T) {
	for name, board := range map[string]game.Board{"endgame": endgame, "endgame2": endgame2, "middlegame": middlegame} {
		t.Run(name, func(t *testing.T) {
			root := game.FromBoard(board)
			table, result := NewSolver(WithMetrics()).Solve(root)

			best, ok := table.Best(root.Key())
			require.True(t, ok)
			require.Equal(t, optimum(root, removedPegs(root)), best)
			require.False(t, result.Exhausted)
			require.Equal(t, result.Leaves, result.Metrics.Leaves)
			require.Equal(t, result.Iterations, result.Metrics.Iterations)
			require.Equal(t, best, result.Metrics.BestReward)
		})
	}
}

func TestSolveRepresentatives(t *testing.T) {
	table, _ := NewSolver().Solve(game.FromBoard(middlegame))

	for _, record := range table.Records() {
		board, err := game.Decode(record.Position)
		require.NoError(t, err)
		require.Equal(t, record.Key, game.FromBoard(board).Key(), "Position should belong to its key")
		require.Positive(t, record.Visits)
	}
}
