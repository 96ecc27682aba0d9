package searcher

import "stonehenge/game"

type mockState struct {
	name     string
	player   string
	moves    []game.Move
	children map[game.Move]*mockState
	over     bool
}

func (m *mockState) Player() string {
	return m.player
}

func (m *mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m *mockState) Play(move game.Move) game.State {
	child, ok := m.children[move]
	if !ok {
		return m
	}
	return child
}

func (m *mockState) Equal(other game.State) bool {
	o, ok := other.(*mockState)
	return ok && o.name == m.name
}

// leaf is a state without moves for player to move.
func leaf(name, player string, over bool) *mockState {
	return &mockState{name: name, player: player, over: over}
}

func branch(name, player string, moves []game.Move, children ...*mockState) *mockState {
	s := &mockState{name: name, player: player, moves: moves, children: map[game.Move]*mockState{}}
	for i, move := range moves {
		s.children[move] = children[i]
	}
	return s
}

type mockGame struct{}

func (mockGame) IsOver(state game.State) bool {
	return state.(*mockState).over
}

func (g mockGame) IsWinnerAt(state game.State, player string) bool {
	return state.Player() != player && g.IsOver(state)
}

func (mockGame) ParseMove(text string) game.Move {
	return game.Move(text)
}
