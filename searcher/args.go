package searcher

import (
	"pegsolitaire/game"
	"pegsolitaire/meta"
)

type Option func(c *config)

type config struct {
	bonus          float64
	budget         int
	baseReward     float64
	hasBaseReward  bool
	reportInterval int
	metrics        MetricsCollector
	start          *game.Environment
}

func defaultConfig() config {
	return config{
		bonus:          CenterBonus,
		budget:         meta.ITERATION_BUDGET,
		reportInterval: meta.REPORT_INTERVAL,
		metrics:        NewNoMetricsCollector(),
	}
}

func newConfig(options []Option) config {
	c := defaultConfig()
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithCenterBonus sets the reward added when a game ends with one peg in the center.
func WithCenterBonus(bonus float64) Option {
	return func(c *config) {
		c.bonus = bonus
	}
}

// WithBudget caps the number of positions a solver expands. Zero or less means no cap.
func WithBudget(iterations int) Option {
	return func(c *config) {
		c.budget = iterations
	}
}

// WithBaseReward overrides the reward credited to the start position, which
// otherwise is the number of pegs already removed from it.
func WithBaseReward(reward float64) Option {
	return func(c *config) {
		c.baseReward = reward
		c.hasBaseReward = true
	}
}

// WithReportInterval sets how often progress is logged, and for the explorer how
// often it checks for new positions.
func WithReportInterval(interval int) Option {
	return func(c *config) {
		if interval > 0 {
			c.reportInterval = interval
		}
	}
}

// WithStart makes the explorer play its games from env instead of the initial position.
func WithStart(env game.Environment) Option {
	return func(c *config) {
		c.start = &env
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = NewMetricsCollector()
	}
}

func (c *config) startPosition() game.Environment {
	if c.start != nil {
		return *c.start
	}
	return game.Initial()
}

func (c *config) startReward(env game.Environment) float64 {
	if c.hasBaseReward {
		return c.baseReward
	}
	return removedPegs(env)
}

// terminalReward adds the center bonus to reward if env qualifies.
func (c *config) terminalReward(env game.Environment, reward float64) float64 {
	if env.SolvedCenter() {
		return reward + c.bonus
	}
	return reward
}
