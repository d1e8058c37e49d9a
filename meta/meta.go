// meta/meta.go
package meta

// REPETITIONS defines the number of games the explorer plays by default.
const REPETITIONS = 100_000

// REPORT_INTERVAL defines how many games (explorer) or leaves (solver) pass between progress reports.
const REPORT_INTERVAL = 50_000

// ITERATION_BUDGET defines the maximum number of positions a solver expands.
const ITERATION_BUDGET = 50_000_000

// OUTPUT_DIR defines where run results are written.
const OUTPUT_DIR = "results"

// CENTER_BONUS defines the extra reward for finishing with a single peg in the center.
const CENTER_BONUS = 10.0
