package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON stores the table as a single object mapping each key to its best reward.
func WriteJSON(path string, records []Record) error {
	values := make(map[string]float64, len(records))
	for _, r := range records {
		values[r.Key] = r.Best
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode state values: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads a file written by WriteJSON.
func ReadJSON(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	values := map[string]float64{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode state values: %w", err)
	}
	return values, nil
}
