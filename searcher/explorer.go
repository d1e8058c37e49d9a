package searcher

import (
	"pegsolitaire/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type ExploreResult struct {
	Rounds      int     // Games played
	Keys        int     // Distinct canonical keys discovered
	StartBest   float64 // Best reward recorded for the start position
	StartVisits int
	Stopped     bool // Exploration ended early because a round of games found no new positions
	Metrics     RunMetric
}

// Explorer plays full games from the initial position, always moving to the least
// visited successor, and backs the final reward up along each game.
type Explorer struct {
	config
}

func NewExplorer(options ...Option) *Explorer {
	return &Explorer{config: newConfig(options)}
}

// Explore plays up to repetitions games from the start position. Every report
// interval it stops early if the previous interval added no new position to the table.
func (e *Explorer) Explore(repetitions int) (*Table, ExploreResult) {
	table := NewTable()
	start := e.startPosition()
	startKey := start.Key()
	result := ExploreResult{}

	length := 0
	begin := time.Now()
	e.metrics.Start()
	for i := 0; i < repetitions; i++ {
		if i > 0 && (i-1)%e.reportInterval == 0 {
			if table.Len() == length {
				log.Info().Int("round", i).Msg("no new positions found, stopping")
				result.Stopped = true
				break
			}
			length = table.Len()
			best, _ := table.Best(startKey)
			log.Info().
				Int("round", i).
				Int("repetitions", repetitions).
				Dur("elapsed", time.Since(begin)).
				Int("positions", length).
				Float64("best", best).
				Msg("exploring")
		}

		reward := e.play(table, start)
		e.metrics.AddLeaf(reward)
		result.Rounds++
	}

	result.Metrics = e.metrics.Complete()
	result.Keys = table.Len()
	result.StartBest, _ = table.Best(startKey)
	result.StartVisits = table.Visits(startKey)
	return table, result
}

// play runs one game from env and returns its final reward.
func (e *Explorer) play(table *Table, env game.Environment) float64 {
	reward := e.startReward(env)
	path := []step{newStep(env)}

	for {
		actions := env.LegalActions()
		if len(actions) == 0 {
			break
		}
		e.metrics.AddIteration()

		var next step
		env, next = leastVisitedSuccessor(table, env, actions)
		reward += RemovedPeg
		path = append(path, next)
	}

	reward = e.terminalReward(env, reward)
	for _, st := range path {
		table.Record(st.key, st.position, Max, reward)
	}
	return reward
}

// leastVisitedSuccessor applies the action whose resulting position has the fewest visits.
func leastVisitedSuccessor(table *Table, env game.Environment, actions []game.Action) (game.Environment, step) {
	successors := make([]game.Environment, len(actions))
	keys := make([]game.Key, len(actions))
	for i, action := range actions {
		successors[i] = env.Apply(action)
		keys[i] = successors[i].Key()
	}

	chosen := table.LeastVisited(keys)
	next := successors[slices.Index(keys, chosen)]
	return next, step{key: chosen, position: game.Encode(&next.Board)}
}
