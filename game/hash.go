package game

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Key identifies a position up to the eight symmetries of the board.
type Key string

// Decimal digits kept from the distance sums.
const hashPrecision = 6

// orbitWeights orders the seven orbit classes from the center outwards.
var orbitWeights = [7]int{1_000_000, 100_000, 10_000, 1_000, 100, 10, 1}

// orbits maps every cell to its orbit class under the board's symmetry group, -1 for walls.
var orbits = func() [Size][Size]int {
	var o [Size][Size]int
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			o[y][x] = orbitOf(x, y)
		}
	}
	return o
}()

func orbitOf(x, y int) int {
	if isCorner(x, y) {
		return -1
	}
	near, far := abs(x-Center.X), abs(y-Center.Y)
	if near > far {
		near, far = far, near
	}
	switch {
	case near == 0 && far == 0:
		return 0
	case near == 0 && far == 1:
		return 1
	case near == 1 && far == 1:
		return 2
	case near == 0 && far == 2:
		return 3
	case near == 1 && far == 2:
		return 4
	case near == 1 && far == 3:
		return 5
	default: // edge midpoints
		return 6
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func distance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(float64(dx*dx + dy*dy))
}

func pairwiseDistance(points []Point) float64 {
	sum := 0.0
	for i, p := range points {
		for _, q := range points[i+1:] {
			sum += distance(p, q)
		}
	}
	return sum
}

// Hash computes the canonical key of a board with the given holes.
func Hash(b *Board, holes []Point) Key {
	centerSum := 0.0
	for _, h := range holes {
		centerSum += distance(h, Center)
	}

	pegs := make([]Point, 0, Cells)
	var classes [7]int
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			cell := b[y][x]
			if cell == Wall {
				continue
			}
			if cell == Peg {
				pegs = append(pegs, Point{X: x, Y: y})
			}
			classes[orbits[y][x]] += int(cell)
		}
	}

	signature := 0
	for i, sum := range classes {
		signature += sum * orbitWeights[i]
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(holes)))
	for _, v := range []float64{pairwiseDistance(holes), centerSum, pairwiseDistance(pegs)} {
		sb.WriteByte('_')
		sb.WriteString(strconv.FormatFloat(scalar.Round(v, hashPrecision), 'f', -1, 64))
	}
	sb.WriteByte('_')
	sb.WriteString(strconv.Itoa(signature))
	return Key(sb.String())
}
