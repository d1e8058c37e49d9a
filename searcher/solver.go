package searcher

import (
	"pegsolitaire/game"

	"github.com/rs/zerolog/log"
)

type SolveResult struct {
	Iterations int  // Positions expanded
	Leaves     int  // Terminal or memoized positions whose reward was backed up
	Exhausted  bool // The budget ran out before the tree was fully enumerated
	Metrics    RunMetric
}

// Solver enumerates the symmetry reduced game tree depth first, memoizing the
// best final reward reachable through every visited position.
type Solver struct {
	config
	table      *Table
	path       []step
	iterations int
	leaves     int
	exhausted  bool
}

func NewSolver(options ...Option) *Solver {
	return &Solver{config: newConfig(options)}
}

// Solve explores from env until the tree is enumerated or the budget is spent.
// A partially filled table is still a valid result.
func (s *Solver) Solve(env game.Environment) (*Table, SolveResult) {
	s.table = NewTable()
	s.path = s.path[:0]
	s.iterations = 0
	s.leaves = 0
	s.exhausted = false

	s.metrics.Start()
	s.iterate(env, s.startReward(env))
	metric := s.metrics.Complete()

	if s.exhausted {
		log.Warn().Int("budget", s.budget).Int("positions", s.table.Len()).Msg("iteration budget exhausted")
	}

	return s.table, SolveResult{
		Iterations: s.iterations,
		Leaves:     s.leaves,
		Exhausted:  s.exhausted,
		Metrics:    metric,
	}
}

func (s *Solver) iterate(env game.Environment, reward float64) {
	if s.budget > 0 && s.iterations >= s.budget {
		s.exhausted = true
		return
	}
	s.iterations++
	s.metrics.AddIteration()

	current := newStep(env)
	s.path = append(s.path, current)
	defer func() { s.path = s.path[:len(s.path)-1] }()

	// A known position already carries the best reward found below it
	if best, ok := s.table.Best(current.key); ok {
		s.backup(best)
		return
	}

	actions := env.SymmetryReducedActions()
	if len(actions) == 0 {
		s.backup(s.terminalReward(env, reward))
		return
	}

	for _, action := range actions {
		s.iterate(env.Apply(action), reward+RemovedPeg)
		if s.exhausted {
			return
		}
	}
}

// backup records reward for every position on the current path.
func (s *Solver) backup(reward float64) {
	for _, st := range s.path {
		s.table.Record(st.key, st.position, Max, reward)
	}
	s.leaves++
	s.metrics.AddLeaf(reward)

	if s.leaves%s.reportInterval == 0 {
		log.Debug().Msgf("reached %d leaves, visited %d positions", s.leaves, s.table.Len())
	}
}
