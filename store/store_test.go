package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"pegsolitaire/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	table := searcher.NewTable()
	table.Record("1_0_0_1565.69579_444884", "111111111111111101111111111111111", searcher.Max, 25)
	table.Record("1_0_0_1565.69579_444884", "111111111111111101111111111111111", searcher.Max, 28)
	table.Record("32_1565.69579_72.843619_0_1000000", "000000000000000010000000000000000", searcher.Max, 41)
	return FromTable("run-1", table.Records())
}

func TestFromTable(t *testing.T) {
	records := sampleRecords()

	require.Equal(t, []Record{
		{RunID: "run-1", Key: "1_0_0_1565.69579_444884", Visits: 2, Best: 28, Position: "111111111111111101111111111111111"},
		{RunID: "run-1", Key: "32_1565.69579_72.843619_0_1000000", Visits: 1, Best: 41, Position: "000000000000000010000000000000000"},
	}, records)
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root, "explore", "abc")
	require.NoError(t, err)
	require.DirExists(t, writer.Dir())
	require.Equal(t, filepath.Join(root, "explore"), filepath.Dir(writer.Dir()))

	t.Run("state values", func(t *testing.T) {
		require.NoError(t, writer.WriteRecords(sampleRecords()))

		rows := readCSV(t, writer.Path("state_values.csv"))
		require.Equal(t, []string{"key", "visits", "best", "position"}, rows[0])
		require.Equal(t, []string{"1_0_0_1565.69579_444884", "2", "28", "111111111111111101111111111111111"}, rows[1])
		require.Len(t, rows, 3)
	})

	t.Run("run summary", func(t *testing.T) {
		run := RunRecord{ID: "abc", Mode: "explore", StartTime: time.Unix(0, 0).UTC(), Duration: time.Second, Rounds: 10, Positions: 2, StartBest: 28, Stopped: true}
		require.NoError(t, writer.WriteRun(run))

		rows := readCSV(t, writer.Path("run.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "abc", rows[1][0])
		require.Equal(t, "1s", rows[1][3])
		require.Equal(t, "28", rows[1][8])
		require.Equal(t, "true", rows[1][9])
	})
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serialized.json")
	require.NoError(t, WriteJSON(path, sampleRecords()))

	values, err := ReadJSON(path)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{
		"1_0_0_1565.69579_444884":           28,
		"32_1565.69579_72.843619_0_1000000": 41,
	}, values)

	_, err = ReadJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "state_values.parquet")
	records := sampleRecords()
	require.NoError(t, WriteParquet(path, records))
	require.NoFileExists(t, path+".tmp")

	got, err := ReadParquet(path)
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestSQLite(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "values.db"))
	require.NoError(t, err)
	defer db.Close()

	first := RunRecord{ID: "run-1", Mode: "explore", StartTime: time.Now(), Positions: 2, StartBest: 28}
	require.NoError(t, db.Save(first, sampleRecords()))

	t.Run("stores records", func(t *testing.T) {
		got, err := db.Load()
		require.NoError(t, err)
		require.Equal(t, sampleRecords(), got)
	})

	t.Run("merges later runs", func(t *testing.T) {
		second := RunRecord{ID: "run-2", Mode: "solve", StartTime: time.Now(), Positions: 2, StartBest: 30}
		require.NoError(t, db.Save(second, []Record{
			{Key: "1_0_0_1565.69579_444884", Visits: 3, Best: 30, Position: "better"},
			{Key: "32_1565.69579_72.843619_0_1000000", Visits: 1, Best: 10, Position: "worse"},
		}))

		got, err := db.Load()
		require.NoError(t, err)
		require.Equal(t, []Record{
			{RunID: "run-2", Key: "1_0_0_1565.69579_444884", Visits: 5, Best: 30, Position: "better"},
			{RunID: "run-1", Key: "32_1565.69579_72.843619_0_1000000", Visits: 2, Best: 41, Position: "000000000000000010000000000000000"},
		}, got)

		runs, err := db.Runs()
		require.NoError(t, err)
		require.Equal(t, 2, runs)
	})

	t.Run("rejects a duplicate run", func(t *testing.T) {
		require.Error(t, db.Save(first, nil))
	})
}
