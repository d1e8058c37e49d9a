package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a folder for one run under root, named by mode, timestamp and run id.
func NewWriter(root, mode, runID string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, mode, timestamp+"-"+runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) Path(name string) string {
	return filepath.Join(w.baseDir, name)
}

func (w *Writer) WriteRun(run RunRecord) error {
	f, err := os.Create(w.Path("run.csv"))
	if err != nil {
		return fmt.Errorf("failed to create run file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "mode", "start_time", "duration", "rounds", "iterations", "leaves", "positions", "start_best", "stopped", "exhausted", "mean_reward", "std_reward"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run header: %w", err)
	}

	row := []string{
		run.ID,
		run.Mode,
		run.StartTime.Format(time.RFC3339),
		run.Duration.String(),
		strconv.Itoa(run.Rounds),
		strconv.Itoa(run.Iterations),
		strconv.Itoa(run.Leaves),
		strconv.Itoa(run.Positions),
		formatFloat(run.StartBest),
		strconv.FormatBool(run.Stopped),
		strconv.FormatBool(run.Exhausted),
		formatFloat(run.MeanReward),
		formatFloat(run.StdReward),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write run row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteRecords(records []Record) error {
	f, err := os.Create(w.Path("state_values.csv"))
	if err != nil {
		return fmt.Errorf("failed to create state values file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"key", "visits", "best", "position"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write state values header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Key,
			strconv.FormatInt(record.Visits, 10),
			formatFloat(record.Best),
			record.Position,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write state value row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
