package game

// Size is the width and height of the cross-shaped board.
const Size = 7

// Cells is the number of playable (non-wall) cells.
const Cells = 33

type Cell int8

const (
	Wall  Cell = -1
	Empty Cell = 0
	Peg   Cell = 1
)

type Point struct {
	X int
	Y int
}

var Center = Point{X: 3, Y: 3}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// comparePoints orders points by X, then Y.
func comparePoints(a, b Point) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}
