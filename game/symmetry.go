package game

// Transform maps a board onto one of its symmetric images.
type Transform func(Board) Board

func remap(f func(p Point) Point) Transform {
	return func(b Board) Board {
		var out Board
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				q := f(Point{X: x, Y: y})
				out[q.Y][q.X] = b[y][x]
			}
		}
		return out
	}
}

const last = Size - 1

var (
	Identity   = remap(func(p Point) Point { return p })
	Rotate90   = remap(func(p Point) Point { return Point{X: last - p.Y, Y: p.X} })
	Rotate180  = remap(func(p Point) Point { return Point{X: last - p.X, Y: last - p.Y} })
	Rotate270  = remap(func(p Point) Point { return Point{X: p.Y, Y: last - p.X} })
	Mirror     = remap(func(p Point) Point { return Point{X: p.X, Y: last - p.Y} })
	Mirror90   = remap(func(p Point) Point { return Point{X: p.Y, Y: p.X} })
	Mirror180  = remap(func(p Point) Point { return Point{X: last - p.X, Y: p.Y} })
	Mirror270  = remap(func(p Point) Point { return Point{X: last - p.Y, Y: last - p.X} })
	Symmetries = []Transform{Identity, Rotate90, Rotate180, Rotate270, Mirror, Mirror90, Mirror180, Mirror270}
)
