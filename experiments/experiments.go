package experiments

import (
	"fmt"
	"pegsolitaire/game"
	"pegsolitaire/searcher"
	"pegsolitaire/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ModeExplore = "explore"
	ModeSolve   = "solve"
)

type Config struct {
	Repetitions    int     // Explorer games
	Budget         int     // Solver iteration cap, 0 for none
	Bonus          float64 // Center bonus
	Board          string  // Solver start position as 33 digits, empty for the initial board
	ReportInterval int
	OutDir         string // Run folder root, empty to skip CSV output
	JSON           bool
	Parquet        bool
	SQLite         string // Database path, empty to skip
}

func (c Config) options() []searcher.Option {
	options := []searcher.Option{
		searcher.WithCenterBonus(c.Bonus),
		searcher.WithBudget(c.Budget),
		searcher.WithMetrics(),
	}
	if c.ReportInterval > 0 {
		options = append(options, searcher.WithReportInterval(c.ReportInterval))
	}
	return options
}

// RunExploration plays cfg.Repetitions games from the initial position and stores the table.
func RunExploration(cfg Config) (store.RunRecord, error) {
	runID := uuid.NewString()
	log.Info().Str("run", runID).Msgf("starting exploration with %d repetitions...", cfg.Repetitions)

	table, result := searcher.NewExplorer(cfg.options()...).Explore(cfg.Repetitions)

	run := store.RunRecord{
		ID:         runID,
		Mode:       ModeExplore,
		StartTime:  result.Metrics.StartTime,
		Duration:   result.Metrics.Duration,
		Rounds:     result.Rounds,
		Iterations: result.Metrics.Iterations,
		Leaves:     result.Metrics.Leaves,
		Positions:  result.Keys,
		StartBest:  result.StartBest,
		Stopped:    result.Stopped,
		MeanReward: result.Metrics.MeanReward,
		StdReward:  result.Metrics.StdReward,
	}
	log.Info().
		Str("run", runID).
		Int("rounds", result.Rounds).
		Int("positions", result.Keys).
		Float64("start_best", result.StartBest).
		Int("start_visits", result.StartVisits).
		Float64("mean_reward", result.Metrics.MeanReward).
		Dur("duration", result.Metrics.Duration).
		Msg("completed exploration")

	return run, persist(cfg, run, table)
}

// RunSolver enumerates the game tree from cfg.Board and stores the table.
func RunSolver(cfg Config) (store.RunRecord, error) {
	env := game.Initial()
	if cfg.Board != "" {
		board, err := game.Decode(cfg.Board)
		if err != nil {
			return store.RunRecord{}, fmt.Errorf("invalid start board: %w", err)
		}
		env = game.FromBoard(board)
	}

	runID := uuid.NewString()
	log.Info().Str("run", runID).Msgf("starting solver from\n%s", env)

	table, result := searcher.NewSolver(cfg.options()...).Solve(env)
	startBest, _ := table.Best(env.Key())

	run := store.RunRecord{
		ID:         runID,
		Mode:       ModeSolve,
		StartTime:  result.Metrics.StartTime,
		Duration:   result.Metrics.Duration,
		Iterations: result.Iterations,
		Leaves:     result.Leaves,
		Positions:  table.Len(),
		StartBest:  startBest,
		Exhausted:  result.Exhausted,
		MeanReward: result.Metrics.MeanReward,
		StdReward:  result.Metrics.StdReward,
	}
	log.Info().
		Str("run", runID).
		Int("iterations", result.Iterations).
		Int("leaves", result.Leaves).
		Int("positions", table.Len()).
		Float64("start_best", startBest).
		Bool("exhausted", result.Exhausted).
		Dur("duration", result.Metrics.Duration).
		Msg("completed solver")

	return run, persist(cfg, run, table)
}

func persist(cfg Config, run store.RunRecord, table *searcher.Table) error {
	records := store.FromTable(run.ID, table.Records())

	if cfg.OutDir != "" {
		writer, err := store.NewWriter(cfg.OutDir, run.Mode, run.ID)
		if err != nil {
			return fmt.Errorf("failed to create run writer: %w", err)
		}

		if err := writer.WriteRun(run); err != nil {
			return fmt.Errorf("failed to store run: %w", err)
		}
		if err := writer.WriteRecords(records); err != nil {
			return fmt.Errorf("failed to store state values: %w", err)
		}
		log.Info().Msgf("stored %d state values in %s", len(records), writer.Dir())

		if cfg.JSON {
			if err := store.WriteJSON(writer.Path("serialized.json"), records); err != nil {
				return err
			}
			log.Info().Msg("stored json")
		}
		if cfg.Parquet {
			if err := store.WriteParquet(writer.Path("state_values.parquet"), records); err != nil {
				return err
			}
			log.Info().Msg("stored parquet")
		}
	}

	if cfg.SQLite != "" {
		db, err := store.Open(cfg.SQLite)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Save(run, records); err != nil {
			return err
		}
		log.Info().Msgf("stored %d state values in %s", len(records), cfg.SQLite)
	}

	return nil
}
