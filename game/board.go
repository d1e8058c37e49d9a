package game

import (
	"fmt"
	"strings"
)

// Board is indexed [y][x]. The four 2x2 corner blocks are always Wall.
type Board [Size][Size]Cell

func isCorner(x, y int) bool {
	return (x < 2 || x > 4) && (y < 2 || y > 4)
}

func inBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < Size && p.Y < Size
}

func filled(c Cell) Board {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if isCorner(x, y) {
				b[y][x] = Wall
			} else {
				b[y][x] = c
			}
		}
	}
	return b
}

// EmptyBoard returns a board with every playable cell Empty.
func EmptyBoard() Board {
	return filled(Empty)
}

// StartBoard returns the starting layout: every playable cell holds a peg except the center.
func StartBoard() Board {
	b := filled(Peg)
	b[Center.Y][Center.X] = Empty
	return b
}

// At returns the cell at p, or Wall when p is off the board.
func (b *Board) At(p Point) Cell {
	if !inBounds(p) {
		return Wall
	}
	return b[p.Y][p.X]
}

func (b *Board) set(p Point, c Cell) {
	b[p.Y][p.X] = c
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == c {
				n++
			}
		}
	}
	return n
}

// Encode writes the playable cells row by row as a 33 digit string of '0' (hole) and '1' (peg).
func Encode(b *Board) string {
	var sb strings.Builder
	sb.Grow(Cells)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch b[y][x] {
			case Wall:
				continue
			case Peg:
				sb.WriteByte('1')
			default:
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// Decode is the inverse of Encode.
func Decode(s string) (Board, error) {
	if len(s) != Cells {
		return Board{}, fmt.Errorf("position must have %d cells, got %d", Cells, len(s))
	}

	b := EmptyBoard()
	i := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if isCorner(x, y) {
				continue
			}
			switch s[i] {
			case '0':
				b[y][x] = Empty
			case '1':
				b[y][x] = Peg
			default:
				return Board{}, fmt.Errorf("invalid cell %q at index %d", s[i], i)
			}
			i++
		}
	}
	return b, nil
}
