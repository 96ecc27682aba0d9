package game

// Move names the cell to claim by its letter, e.g. "A".
type Move string

// NoMove is returned wherever a move cannot be produced: unparsable input
// or a search started from a state without legal moves.
const NoMove Move = ""

const (
	P1 = "p1"
	P2 = "p2"
)

// Terminal scores, from the perspective of the player they are reported to.
const (
	Win  = 1.0
	Lose = -Win
	Draw = 0.0
)

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	// Equal compares whose turn it is and how many lines each player holds
	Equal(State) bool
}

// Game derives the result of play from a state. It never mutates the states
// it is given, so searches can pass states around freely.
type Game interface {
	IsOver(State) bool
	IsWinnerAt(state State, player string) bool
	ParseMove(text string) Move
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64

func Opponent(player string) string {
	if player == P1 {
		return P2
	}
	return P1
}
