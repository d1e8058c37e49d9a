package searcher

import (
	"math"
	"pegsolitaire/game"
	"pegsolitaire/meta"
)

// Rewards

const RemovedPeg = 1.0               // Reward for every jump
const CenterBonus = meta.CENTER_BONUS // Extra reward for finishing with one peg in the center

// Combine merges a stored best reward with a newly observed one.
type Combine func(stored, observed float64) float64

// Max is the combine function used by both searches.
var Max Combine = math.Max

// step is one position on the current trajectory.
type step struct {
	key      game.Key
	position string
}

func newStep(env game.Environment) step {
	return step{key: env.Key(), position: game.Encode(&env.Board)}
}

// removedPegs is the reward already earned on the way to env from the start position.
func removedPegs(env game.Environment) float64 {
	removed := len(env.Holes) - 1
	if removed < 0 {
		return 0
	}
	return float64(removed) * RemovedPeg
}
