package game

import "golang.org/x/exp/slices"

const instructions = "Take turns claiming cells (the capital letters). A player who " +
	"claims at least half of the cells in a ley-line captures it, and the " +
	"first player to capture at least half of all the ley-lines wins!"

// Stonehenge binds the rules to a board configuration and keeps the state
// a session is currently at.
type Stonehenge struct {
	sideLength int
	p1Starts   bool
	letters    []Move
	current    State
}

// NewStonehenge validates the side length and sets up the starting state.
func NewStonehenge(p1Starts bool, sideLength int) (*Stonehenge, error) {
	start, err := NewBoardState(p1Starts, sideLength)
	if err != nil {
		return nil, err
	}
	return &Stonehenge{
		sideLength: sideLength,
		p1Starts:   p1Starts,
		letters:    start.geo.Letters(),
		current:    start,
	}, nil
}

func (g *Stonehenge) SideLength() int {
	return g.sideLength
}

func (g *Stonehenge) P1Starts() bool {
	return g.p1Starts
}

func (g *Stonehenge) Instructions() string {
	return instructions
}

func (g *Stonehenge) Current() State {
	return g.current
}

func (g *Stonehenge) SetCurrent(state State) {
	g.current = state
}

// IsOver reports whether a player holds enough ley-lines at state, whether
// or not cells remain unclaimed.
func (g *Stonehenge) IsOver(state State) bool {
	bs, ok := state.(*BoardState)
	if !ok {
		panic("unexpected state type")
	}
	return bs.Over()
}

// IsWinner reports whether player has won at the current state.
func (g *Stonehenge) IsWinner(player string) bool {
	return g.IsWinnerAt(g.current, player)
}

// IsWinnerAt names the winner by turn: once the game is over, whoever is not
// to move made the deciding move and wins. Line majorities are not consulted.
func (g *Stonehenge) IsWinnerAt(state State, player string) bool {
	return state.Player() != player && g.IsOver(state)
}

// ParseMove accepts exactly one letter of a cell on this board.
func (g *Stonehenge) ParseMove(text string) Move {
	move := Move(text)
	if !slices.Contains(g.letters, move) {
		return NoMove
	}
	return move
}
