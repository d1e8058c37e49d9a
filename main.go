package main

import (
	"flag"
	"os"
	"pegsolitaire/experiments"
	"pegsolitaire/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", experiments.ModeExplore, "Search to run: explore or solve")
	repetitions := flag.Int("repetitions", meta.REPETITIONS, "Number of games the explorer plays")
	budget := flag.Int("budget", meta.ITERATION_BUDGET, "Maximum positions the solver expands, 0 for no limit")
	bonus := flag.Float64("bonus", meta.CENTER_BONUS, "Reward for finishing with one peg in the center")
	interval := flag.Int("interval", meta.REPORT_INTERVAL, "Games or leaves between progress reports")
	board := flag.String("board", "", "Start position for the solver as 33 digits, defaults to the initial board")
	out := flag.String("out", meta.OUTPUT_DIR, "Directory for run results, empty to skip")
	sqlite := flag.String("sqlite", "", "SQLite database to merge the state values into")
	parquet := flag.Bool("parquet", false, "Also write the state values as parquet")
	json := flag.Bool("json", false, "Also write the state values as a key to reward json object")
	verbose := flag.Bool("v", false, "Log progress at debug level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := experiments.Config{
		Repetitions:    *repetitions,
		Budget:         *budget,
		Bonus:          *bonus,
		Board:          *board,
		ReportInterval: *interval,
		OutDir:         *out,
		JSON:           *json,
		Parquet:        *parquet,
		SQLite:         *sqlite,
	}

	var err error
	switch *mode {
	case experiments.ModeExplore:
		_, err = experiments.RunExploration(cfg)
	case experiments.ModeSolve:
		_, err = experiments.RunSolver(cfg)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("run failed")
	}
}
