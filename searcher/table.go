package searcher

import (
	"math"
	"pegsolitaire/game"
	"strings"

	"golang.org/x/exp/slices"
)

// Entry is the memo kept for one canonical key.
type Entry struct {
	Visits   int
	Best     float64
	Position string // Encoded board that produced Best
}

// Record is an exported table row.
type Record struct {
	Key      game.Key
	Visits   int
	Best     float64
	Position string
}

// Table maps canonical keys to the best reward seen through them.
// It is owned by a single search at a time and is not safe for concurrent use.
type Table struct {
	entries map[game.Key]Entry
}

func NewTable() *Table {
	return &Table{entries: make(map[game.Key]Entry)}
}

// Record counts a visit of key and keeps combine(best, reward) if it improves on the stored best.
// An unseen key starts from a best of 0, but its first observation always stores
// combine(0, reward) and the position, even when that is no strict improvement.
func (t *Table) Record(key game.Key, position string, combine Combine, reward float64) {
	entry, seen := t.entries[key]
	if best := combine(entry.Best, reward); best > entry.Best || !seen {
		entry.Best = best
		entry.Position = position
	}
	entry.Visits++
	t.entries[key] = entry
}

// Best returns the best reward stored for key, false if key was never recorded.
func (t *Table) Best(key game.Key) (float64, bool) {
	entry, ok := t.entries[key]
	return entry.Best, ok
}

func (t *Table) Visits(key game.Key) int {
	return t.entries[key].Visits
}

func (t *Table) Entry(key game.Key) (Entry, bool) {
	entry, ok := t.entries[key]
	return entry, ok
}

func (t *Table) Len() int {
	return len(t.entries)
}

// LeastVisited returns the candidate with the fewest visits, returning early on an unseen one.
// Ties keep the earlier candidate.
func (t *Table) LeastVisited(keys []game.Key) game.Key {
	if len(keys) == 0 {
		panic("no candidates to choose from")
	}

	least := keys[0]
	minVisits := math.MaxInt
	for _, key := range keys {
		visits := t.Visits(key)
		if visits == 0 {
			return key
		}
		if visits < minVisits {
			minVisits = visits
			least = key
		}
	}
	return least
}

// Records exports every entry, sorted by key.
func (t *Table) Records() []Record {
	records := make([]Record, 0, len(t.entries))
	for key, entry := range t.entries {
		records = append(records, Record{
			Key:      key,
			Visits:   entry.Visits,
			Best:     entry.Best,
			Position: entry.Position,
		})
	}
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(string(a.Key), string(b.Key))
	})
	return records
}
