package store

import (
	"pegsolitaire/searcher"
	"time"
)

// Record is one row of an exported state-value table.
type Record struct {
	RunID    string  `parquet:"run_id,dict"`
	Key      string  `parquet:"key"`
	Visits   int64   `parquet:"visits"`
	Best     float64 `parquet:"best"`
	Position string  `parquet:"position"` // 33 digit board, see game.Encode
}

// RunRecord summarizes one exploration or solver run.
type RunRecord struct {
	ID         string
	Mode       string
	StartTime  time.Time
	Duration   time.Duration
	Rounds     int // Explorer games
	Iterations int // Positions expanded
	Leaves     int
	Positions  int // Distinct canonical keys
	StartBest  float64
	Stopped    bool // Explorer found no new positions
	Exhausted  bool // Solver ran out of budget
	MeanReward float64
	StdReward  float64
}

func FromTable(runID string, records []searcher.Record) []Record {
	rows := make([]Record, 0, len(records))
	for _, r := range records {
		rows = append(rows, Record{
			RunID:    runID,
			Key:      string(r.Key),
			Visits:   int64(r.Visits),
			Best:     r.Best,
			Position: r.Position,
		})
	}
	return rows
}
