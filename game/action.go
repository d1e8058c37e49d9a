package game

import "fmt"

type Jump int

const (
	Left Jump = iota
	Down
	Right
	Up
)

// probeOrder is the order in which directions are tried from each hole.
var probeOrder = [4]Jump{Right, Left, Down, Up}

// Offset is the displacement from the jumping peg to its landing cell.
func (j Jump) Offset() Point {
	switch j {
	case Left:
		return Point{X: -2, Y: 0}
	case Down:
		return Point{X: 0, Y: 2}
	case Right:
		return Point{X: 2, Y: 0}
	case Up:
		return Point{X: 0, Y: -2}
	}
	panic(fmt.Sprintf("unknown jump %d", int(j)))
}

// Over is the displacement from the jumping peg to the peg it removes.
func (j Jump) Over() Point {
	o := j.Offset()
	return Point{X: o.X / 2, Y: o.Y / 2}
}

func (j Jump) Opposite() Jump {
	return (j + 2) % 4
}

func (j Jump) String() string {
	switch j {
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Up:
		return "Up"
	}
	return fmt.Sprintf("Jump(%d)", int(j))
}

// Action moves the peg at Point two cells in direction Jump.
type Action struct {
	Point Point
	Jump  Jump
}

func (a Action) Landing() Point {
	return a.Point.Add(a.Jump.Offset())
}

func (a Action) Removed() Point {
	return a.Point.Add(a.Jump.Over())
}

func (a Action) String() string {
	return fmt.Sprintf("%s from (%d,%d)", a.Jump, a.Point.X, a.Point.Y)
}
