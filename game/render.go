package game

import (
	"fmt"
	"strings"
)

func (c Capture) String() string {
	switch c.owner {
	case Owner1:
		return "1"
	case Owner2:
		return "2"
	default:
		return "@"
	}
}

// String draws the board row by row with each row's ley-line marker in
// front, followed by the markers of both diagonal families. Claimed cells
// show their owner's number instead of their letter.
func (s *BoardState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s to move, ley-lines p1: %d, p2: %d\n", s.Player(), s.Outcome().P1, s.Outcome().P2)

	widest := s.geo.side + 1
	var upLeft, downLeft []string
	for line, members := range s.geo.lines {
		marker := s.lines[line].capture.String()
		switch s.geo.families[line] {
		case UpLeft:
			upLeft = append(upLeft, marker)
			continue
		case DownLeft:
			downLeft = append(downLeft, marker)
			continue
		}

		cells := make([]string, len(members))
		for i, p := range members {
			switch s.cells[p] {
			case Owner1:
				cells[i] = "1"
			case Owner2:
				cells[i] = "2"
			default:
				cells[i] = string(s.geo.letters[p])
			}
		}
		b.WriteString(strings.Repeat("  ", widest-len(members)))
		fmt.Fprintf(&b, "%s - %s\n", marker, strings.Join(cells, " - "))
	}
	fmt.Fprintf(&b, "up-left:   %s\n", strings.Join(upLeft, " "))
	fmt.Fprintf(&b, "down-left: %s", strings.Join(downLeft, " "))
	return b.String()
}
