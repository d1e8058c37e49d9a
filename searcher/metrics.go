package searcher

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type RunMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Iterations int // Positions expanded
	Leaves     int // Trajectories whose reward was backed up
	MeanReward float64
	StdReward  float64
	BestReward float64
}

type MetricsCollector interface {
	Start()
	AddIteration()
	AddLeaf(reward float64)
	Complete() RunMetric
}

type metricsCollector struct {
	startTime  time.Time
	iterations int
	leaves     int
	rewards    map[float64]float64 // Reward -> number of leaves
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{rewards: make(map[float64]float64)}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.iterations = 0
	m.leaves = 0
	clear(m.rewards)
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddLeaf(reward float64) {
	m.leaves++
	m.rewards[reward]++
}

func (m *metricsCollector) Complete() RunMetric {
	metric := RunMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Iterations: m.iterations,
		Leaves:     m.leaves,
	}
	if len(m.rewards) == 0 {
		return metric
	}

	values := make([]float64, 0, len(m.rewards))
	weights := make([]float64, 0, len(m.rewards))
	for reward, count := range m.rewards {
		values = append(values, reward)
		weights = append(weights, count)
	}
	metric.BestReward = floats.Max(values)
	if m.leaves > 1 {
		metric.MeanReward, metric.StdReward = stat.MeanStdDev(values, weights)
	} else {
		metric.MeanReward = values[0]
	}
	return metric
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()              {}
func (m *noMetricsCollector) AddIteration()       {}
func (m *noMetricsCollector) AddLeaf(float64)     {}
func (m *noMetricsCollector) Complete() RunMetric { return RunMetric{} }
