package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
	ErrNoSession   = errors.New("no such game")
	ErrStaleSearch = errors.New("game moved on during the search")
)

// GameMaster keeps every running session by ID.
type GameMaster struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewGameMaster() *GameMaster {
	return &GameMaster{
		sessions: map[string]*Session{},
	}
}

// Create starts a new session on a fresh board.
func (gm *GameMaster) Create(p1Starts bool, sideLength int) (*Session, error) {
	id := uuid.NewString()
	s, err := NewSession(id, p1Starts, sideLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	gm.mu.Lock()
	gm.sessions[id] = s
	gm.mu.Unlock()

	log.Info().Msgf("created game %s with side length %d", id, sideLength)
	return s, nil
}

func (gm *GameMaster) Get(id string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, ok := gm.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	return s, nil
}

// Remove forgets a session. Its subscribers get no further updates.
func (gm *GameMaster) Remove(id string) {
	gm.mu.Lock()
	delete(gm.sessions, id)
	gm.mu.Unlock()
}

func (gm *GameMaster) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.sessions)
}
