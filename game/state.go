package game

const maxCells = 25

// BoardState is a snapshot of a Stonehenge board between two moves.
// Play never modifies its receiver: successors copy the cells and share
// every ley-line record the move did not touch.
type BoardState struct {
	geo    *Geometry
	p1Turn bool
	cells  [maxCells]Owner // by position
	lines  []*leyLine
}

// NewBoardState returns the starting position: nothing claimed and the
// player named by p1Turn to move.
func NewBoardState(p1Turn bool, sideLength int) (*BoardState, error) {
	geo, err := GeometryFor(sideLength)
	if err != nil {
		return nil, err
	}

	empty := &leyLine{}
	lines := make([]*leyLine, geo.Lines())
	for i := range lines {
		lines[i] = empty
	}
	return &BoardState{
		geo:    geo,
		p1Turn: p1Turn,
		lines:  lines,
	}, nil
}

func (s *BoardState) Geometry() *Geometry {
	return s.geo
}

func (s *BoardState) SideLength() int {
	return s.geo.side
}

func (s *BoardState) P1Turn() bool {
	return s.p1Turn
}

func (s *BoardState) Player() string {
	if s.p1Turn {
		return P1
	}
	return P2
}

// LegalMoves lists the unclaimed cells in ascending order, or nothing once
// a player holds enough ley-lines to end the game.
func (s *BoardState) LegalMoves() []Move {
	if s.Over() {
		return []Move{}
	}
	moves := make([]Move, 0, s.geo.Cells())
	for p, letter := range s.geo.letters {
		if s.cells[p] == Unowned {
			moves = append(moves, letter)
		}
	}
	return moves
}

// Play claims the cell for the player to move. A move that does not name an
// unclaimed cell leaves the game where it is and returns the receiver.
func (s *BoardState) Play(move Move) State {
	p, ok := s.geo.position[move]
	if !ok || s.cells[p] != Unowned {
		return s
	}

	mover := ownerOf(s.p1Turn)
	next := &BoardState{
		geo:    s.geo,
		p1Turn: !s.p1Turn,
		cells:  s.cells,
		lines:  append([]*leyLine(nil), s.lines...),
	}
	next.cells[p] = mover
	for _, line := range s.geo.crossing[p] {
		next.lines[line] = s.lines[line].claimed(mover, s.geo.lineSize(line))
	}
	return next
}

func (s *BoardState) Outcome() Outcome {
	var o Outcome
	for _, line := range s.lines {
		switch line.capture.Owner() {
		case Owner1:
			o.P1++
		case Owner2:
			o.P2++
		}
	}
	return o
}

// Over reports whether a player has captured enough ley-lines to win. It
// does not look at unclaimed cells.
func (s *BoardState) Over() bool {
	return s.Outcome().Decided(len(s.lines))
}

func (s *BoardState) Equal(other State) bool {
	o, ok := other.(*BoardState)
	if !ok {
		return false
	}
	return s.p1Turn == o.p1Turn && s.Outcome() == o.Outcome()
}

// Owner returns who holds the cell with the given letter.
func (s *BoardState) Owner(letter Move) Owner {
	p, ok := s.geo.position[letter]
	if !ok {
		return Unowned
	}
	return s.cells[p]
}

// Capture returns the claim on a ley-line, numbered from 0.
func (s *BoardState) Capture(line int) Capture {
	return s.lines[line].capture
}

// Votes returns how many cells of a ley-line each player holds.
func (s *BoardState) Votes(line int) (p1, p2 int) {
	return s.lines[line].votes[0], s.lines[line].votes[1]
}

// Claimed counts the cells owned by either player.
func (s *BoardState) Claimed() int {
	count := 0
	for p := 0; p < s.geo.Cells(); p++ {
		if s.cells[p] != Unowned {
			count++
		}
	}
	return count
}
