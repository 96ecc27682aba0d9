package metrics

import (
	"sync"
	"time"

	"stonehenge/searcher"
)

type AgentConfig struct {
	ID       int
	Strategy string // searcher strategy name
	Seed     uint64 // only used by the random strategy
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	searcher.SearchMetrics
}

type GameMetric struct {
	SideLength     int
	StartingPlayer string
	Winner         string // empty on a draw or when the move cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers the records of an experiment. Games may finish
// concurrently, so it is safe for use by several goroutines.
type Collector interface {
	AddGame(agent1, agent2 AgentConfig, game GameMetric, moves []MoveMetric) int
	GameRecords() []GameRecord
	MoveRecords() []MoveRecord
}

type collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() Collector {
	return &collector{}
}

// AddGame stores one finished game and returns the ID it was recorded under.
func (c *collector) AddGame(agent1, agent2 AgentConfig, game GameMetric, moves []MoveMetric) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := len(c.games) + 1
	c.games = append(c.games, GameRecord{
		ID:         id,
		Agent1:     agent1.ID,
		Agent2:     agent2.ID,
		GameMetric: game,
	})
	for _, mm := range moves {
		c.moves = append(c.moves, MoveRecord{Game: id, MoveMetric: mm})
	}
	return id
}

func (c *collector) GameRecords() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]GameRecord(nil), c.games...)
}

func (c *collector) MoveRecords() []MoveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]MoveRecord(nil), c.moves...)
}
