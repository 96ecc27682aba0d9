package gamemaster

import (
	"fmt"
	"sync"

	"stonehenge/game"
	"stonehenge/searcher"
	"stonehenge/utils"
)

// Update describes one applied move. Step counts the moves of the session,
// so the first move is step 1.
type Update struct {
	Step     int
	Move     game.Move
	Snapshot Snapshot
}

// Snapshot is a read-only view of a session, shaped for JSON.
type Snapshot struct {
	ID         string      `json:"id"`
	SideLength int         `json:"side_length"`
	Player     string      `json:"player"`
	LegalMoves []game.Move `json:"legal_moves"`
	History    []game.Move `json:"history"`
	LinesP1    int         `json:"lines_p1"`
	LinesP2    int         `json:"lines_p2"`
	Over       bool        `json:"over"`
	Winner     string      `json:"winner,omitempty"`
	Board      string      `json:"board"`
}

// Session is one game in progress. All methods are safe for concurrent use;
// moves are applied one at a time.
type Session struct {
	mu          sync.Mutex
	id          string
	game        *game.Stonehenge
	history     []game.Move
	subscribers map[int]func(Update)
	nextID      int
}

func NewSession(id string, p1Starts bool, sideLength int) (*Session, error) {
	g, err := game.NewStonehenge(p1Starts, sideLength)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:          id,
		game:        g,
		history:     []game.Move{},
		subscribers: map[int]func(Update){},
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

// Rules returns the adapter strategies search with. Its methods that take an
// explicit state are safe to call while the session changes.
func (s *Session) Rules() game.Game {
	return s.game
}

// Init returns the current state and the instructions for a new player.
func (s *Session) Init() (game.State, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Current(), s.game.Instructions()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to be called after every move, in move order. fn
// runs while the session is locked and must not call back into it. The
// returned function cancels the subscription.
func (s *Session) Subscribe(fn func(Update)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Play applies a move for the player to move, given as a cell letter.
func (s *Session) Play(text string) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	move := s.game.ParseMove(text)
	if err := s.check(move); err != nil {
		return Update{}, fmt.Errorf("%w: %q", err, text)
	}
	return s.apply(move), nil
}

// AIMove lets strategy pick and play the next move. The search runs without
// holding the session, so the game can be read meanwhile; a move played by
// someone else during the search makes the result ErrStaleSearch.
func (s *Session) AIMove(strategy searcher.Strategy) (Update, error) {
	s.mu.Lock()
	state := s.game.Current()
	over := s.game.IsOver(state)
	s.mu.Unlock()
	if over {
		return Update{}, ErrGameOver
	}

	move := strategy.FindNextMove(state)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.Current() != state {
		return Update{}, ErrStaleSearch
	}
	if err := s.check(move); err != nil {
		return Update{}, fmt.Errorf("strategy answered %q: %w", move, err)
	}
	return s.apply(move), nil
}

// check must be called with mu held.
func (s *Session) check(move game.Move) error {
	state := s.game.Current()
	if s.game.IsOver(state) {
		return ErrGameOver
	}
	if utils.FindIndex(state.LegalMoves(), move) == -1 {
		return ErrIllegalMove
	}
	return nil
}

// apply must be called with mu held.
func (s *Session) apply(move game.Move) Update {
	s.game.SetCurrent(s.game.Current().Play(move))
	s.history = append(s.history, move)

	u := Update{Step: len(s.history), Move: move, Snapshot: s.snapshot()}
	for _, fn := range s.subscribers {
		fn(u)
	}
	return u
}

func (s *Session) snapshot() Snapshot {
	state, ok := s.game.Current().(*game.BoardState)
	if !ok {
		panic("unexpected state type")
	}

	outcome := state.Outcome()
	snap := Snapshot{
		ID:         s.id,
		SideLength: s.game.SideLength(),
		Player:     state.Player(),
		LegalMoves: state.LegalMoves(),
		History:    append([]game.Move{}, s.history...),
		LinesP1:    outcome.P1,
		LinesP2:    outcome.P2,
		Over:       s.game.IsOver(state),
		Board:      state.String(),
	}
	for _, player := range []string{game.P1, game.P2} {
		if s.game.IsWinner(player) {
			snap.Winner = player
		}
	}
	return snap
}
