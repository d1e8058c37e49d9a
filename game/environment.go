package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Environment is a board together with its sorted list of holes.
// It should be treated as immutable - Apply always returns a new copy.
type Environment struct {
	Board Board
	Holes []Point
}

// Initial returns the standard starting position with the center hole open.
func Initial() Environment {
	return Environment{
		Board: StartBoard(),
		Holes: []Point{Center},
	}
}

// FromBoard builds an environment for an arbitrary board, deriving its hole list.
func FromBoard(b Board) Environment {
	return Environment{Board: b, Holes: holesOf(&b)}
}

// holesOf scans column by column so the result is already in X, Y order.
func holesOf(b *Board) []Point {
	holes := []Point{}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b[y][x] == Empty {
				holes = append(holes, Point{X: x, Y: y})
			}
		}
	}
	return holes
}

// LegalActions returns every jump that lands in a hole, or nil if there is none.
func (e Environment) LegalActions() []Action {
	var actions []Action
	for _, hole := range e.Holes {
		for _, jump := range probeOrder {
			back := jump.Opposite()
			origin := hole.Add(back.Offset())
			over := hole.Add(back.Over())
			if e.Board.At(origin) == Peg && e.Board.At(over) == Peg {
				actions = append(actions, Action{Point: origin, Jump: jump})
			}
		}
	}
	return actions
}

// Terminal reports whether no jump is left.
func (e Environment) Terminal() bool {
	return len(e.LegalActions()) == 0
}

// Apply plays the action and returns the resulting environment.
// It panics if the action is not legal for e.
func (e Environment) Apply(a Action) Environment {
	landing := a.Landing()
	removed := a.Removed()
	if e.Board.At(landing) != Empty {
		panic(fmt.Sprintf("illegal action %s: landing cell (%d,%d) is not empty\n%s", a, landing.X, landing.Y, e))
	}
	if e.Board.At(a.Point) != Peg || e.Board.At(removed) != Peg {
		panic(fmt.Sprintf("illegal action %s: no peg to jump\n%s", a, e))
	}

	next := e.Board
	next.set(landing, Peg)
	next.set(a.Point, Empty)
	next.set(removed, Empty)

	i, found := slices.BinarySearchFunc(e.Holes, landing, comparePoints)
	if !found {
		panic(fmt.Sprintf("hole list out of sync: (%d,%d) missing", landing.X, landing.Y))
	}
	holes := make([]Point, 0, len(e.Holes)+1)
	holes = append(holes, e.Holes[:i]...)
	holes = append(holes, e.Holes[i+1:]...)
	holes = insertSorted(holes, removed)
	holes = insertSorted(holes, a.Point)

	return Environment{Board: next, Holes: holes}
}

func insertSorted(points []Point, p Point) []Point {
	i, _ := slices.BinarySearchFunc(points, p, comparePoints)
	return slices.Insert(points, i, p)
}

// SymmetryReducedActions keeps the first action for each distinct resulting key.
func (e Environment) SymmetryReducedActions() []Action {
	actions := e.LegalActions()
	if len(actions) == 0 {
		return nil
	}

	seen := make(map[Key]struct{}, len(actions))
	reduced := make([]Action, 0, len(actions))
	for _, action := range actions {
		key := e.Apply(action).Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		reduced = append(reduced, action)
	}
	return reduced
}

func (e Environment) Key() Key {
	return Hash(&e.Board, e.Holes)
}

func (e Environment) Pegs() int {
	return e.Board.Count(Peg)
}

// SolvedCenter reports whether a single peg is left and it sits in the center.
func (e Environment) SolvedCenter() bool {
	return len(e.Holes) == Cells-1 && e.Board.At(Center) == Peg
}

func (e Environment) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if e.Board[y][x] == Peg {
				sb.WriteString(" x ")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
