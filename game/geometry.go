package game

import (
	"errors"
	"fmt"
)

const (
	MinSideLength = 1
	MaxSideLength = 5
)

var ErrSideLength = errors.New("side length is out of range (from 1 to 5)")

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Ley-lines of the largest board, by cell index. Smaller boards keep the
// members that exist on them.
var (
	rowLines = [][]int{
		{1, 2}, {3, 4, 5}, {6, 7, 8, 9}, {10, 11, 12, 13, 14},
		{15, 16, 17, 18, 19, 20}, {21, 22, 23, 24, 25},
	}
	upLeftLines = [][]int{
		{2, 5, 9, 14, 20}, {1, 4, 8, 13, 19, 25}, {3, 7, 12, 18, 24},
		{6, 11, 17, 23}, {10, 16, 22}, {15, 21},
	}
	downLeftLines = [][]int{
		{1, 3, 6, 10, 15}, {2, 4, 7, 11, 16, 21}, {5, 8, 12, 17, 22},
		{9, 13, 18, 23}, {14, 19, 24}, {20, 25},
	}
)

// LineFamily tells which direction a ley-line runs in.
type LineFamily int

const (
	Row LineFamily = iota
	UpLeft
	DownLeft
)

// Geometry is the static layout of a board: which cells exist and which
// cells every ley-line runs through. It never changes during a game and is
// shared by every state of the same side length.
type Geometry struct {
	side     int
	indices  []int        // cell index per position, ascending
	letters  []Move       // cell letter per position
	position map[Move]int // letter -> position
	lines    [][]int      // member positions per line
	families []LineFamily // family per line
	crossing [][]int      // lines through each position
}

var geometries = buildGeometries()

func buildGeometries() []*Geometry {
	all := make([]*Geometry, MaxSideLength+1)
	for side := MinSideLength; side <= MaxSideLength; side++ {
		all[side] = newGeometry(side)
	}
	return all
}

// GeometryFor returns the shared layout for a side length.
func GeometryFor(sideLength int) (*Geometry, error) {
	if sideLength < MinSideLength || sideLength > MaxSideLength {
		return nil, fmt.Errorf("%w: got %d", ErrSideLength, sideLength)
	}
	return geometries[sideLength], nil
}

// CellCount is the number of cells on a board with the given side length.
func CellCount(sideLength int) int {
	return (sideLength*sideLength + 5*sideLength) / 2
}

// LineCount is the number of ley-lines on a board with the given side length.
func LineCount(sideLength int) int {
	return 3 * (sideLength + 1)
}

func newGeometry(side int) *Geometry {
	count := CellCount(side)
	g := &Geometry{
		side:     side,
		indices:  make([]int, count),
		letters:  make([]Move, count),
		position: make(map[Move]int, count),
	}

	// The last row of a smaller board is labelled one index further on,
	// which leaves exactly one index unused.
	byIndex := make(map[int]int, count)
	for p := 0; p < count; p++ {
		index := p + 1
		if side < MaxSideLength && p >= count-side {
			index = p + 2
		}
		g.indices[p] = index
		g.letters[p] = Move(alphabet[p : p+1])
		g.position[g.letters[p]] = p
		byIndex[index] = p
	}

	total := LineCount(side)
	g.lines = make([][]int, 0, total)
	g.families = make([]LineFamily, 0, total)
	for id := 1; id <= total; id++ {
		var family LineFamily
		var source []int
		switch {
		case id <= side+1:
			family, source = Row, rowLines[id-1]
		case id > total-(side+1):
			family, source = DownLeft, downLeftLines[id-1-(total-(side+1))]
		default:
			family, source = UpLeft, upLeftLines[id-1-(side+1)]
		}

		members := []int{}
		for _, index := range source {
			if p, ok := byIndex[index]; ok {
				members = append(members, p)
			}
		}
		g.lines = append(g.lines, members)
		g.families = append(g.families, family)
	}

	g.crossing = make([][]int, count)
	for line, members := range g.lines {
		for _, p := range members {
			g.crossing[p] = append(g.crossing[p], line)
		}
	}
	return g
}

func (g *Geometry) SideLength() int {
	return g.side
}

func (g *Geometry) Cells() int {
	return len(g.indices)
}

func (g *Geometry) Lines() int {
	return len(g.lines)
}

// Letters returns the cell letters in ascending index order.
func (g *Geometry) Letters() []Move {
	return append([]Move(nil), g.letters...)
}

// Index returns the board index of a cell letter.
func (g *Geometry) Index(letter Move) (int, bool) {
	p, ok := g.position[letter]
	if !ok {
		return 0, false
	}
	return g.indices[p], true
}

// LineIndices returns the cell indices a ley-line runs through. Lines are
// numbered from 0.
func (g *Geometry) LineIndices(line int) []int {
	members := g.lines[line]
	indices := make([]int, len(members))
	for i, p := range members {
		indices[i] = g.indices[p]
	}
	return indices
}

func (g *Geometry) Family(line int) LineFamily {
	return g.families[line]
}

func (g *Geometry) lineSize(line int) int {
	return len(g.lines[line])
}
