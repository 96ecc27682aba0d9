package game

// Owner is who holds a cell or a ley-line.
type Owner uint8

const (
	Unowned Owner = iota
	Owner1
	Owner2
)

func ownerOf(p1Turn bool) Owner {
	if p1Turn {
		return Owner1
	}
	return Owner2
}

func (o Owner) Player() string {
	switch o {
	case Owner1:
		return P1
	case Owner2:
		return P2
	default:
		return ""
	}
}

// Capture is the claim on a ley-line. The zero value is unclaimed; once
// locked to a player it can not move to anyone else.
type Capture struct {
	owner Owner
}

func (c Capture) Owner() Owner {
	return c.owner
}

func (c Capture) Locked() bool {
	return c.owner != Unowned
}

func (c Capture) lockTo(o Owner) Capture {
	if c.Locked() {
		return c
	}
	return Capture{owner: o}
}

// majority reports whether count out of size reaches the capture threshold:
// half of an even size, more than half of an odd one.
func majority(count, size int) bool {
	half := size / 2
	if size%2 == 0 {
		return count > 0 && count >= half
	}
	return count > half
}

// leyLine is the per-state bookkeeping of one line. Records are never
// mutated after a state is built, so successors share untouched ones.
type leyLine struct {
	votes   [2]int
	capture Capture
}

func (l *leyLine) claimed(by Owner, size int) *leyLine {
	next := &leyLine{votes: l.votes, capture: l.capture}
	next.votes[by-Owner1]++
	if majority(next.votes[by-Owner1], size) {
		next.capture = next.capture.lockTo(by)
	}
	return next
}

// Outcome counts the ley-lines locked to each player.
type Outcome struct {
	P1 int
	P2 int
}

func (o Outcome) Of(player string) int {
	if player == P1 {
		return o.P1
	}
	return o.P2
}

// Decided reports whether either player holds enough of total lines to end
// the game.
func (o Outcome) Decided(total int) bool {
	return majority(o.P1, total) || majority(o.P2, total)
}
