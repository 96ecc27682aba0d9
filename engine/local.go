package engine

import (
	"time"

	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Agent is a strategy seated at the board.
type Agent struct {
	Strategy searcher.Strategy
	// Metrics is the collector Strategy was built with, if any.
	Metrics searcher.MetricsCollector
	// Retries is how often an illegal answer is asked for again. Console
	// players need a few; computer strategies none.
	Retries int
}

type Update struct {
	Step   int
	Player string
	Move   game.Move
	State  game.State
}

type Option func(e *LocalEngine)

func WithMaxMoves(n int) Option {
	return func(e *LocalEngine) {
		if n <= 0 {
			panic("max moves must be positive")
		}
		e.maxMoves = n
	}
}

// WithUpdates registers a callback run after every move.
func WithUpdates(fn func(Update)) Option {
	return func(e *LocalEngine) {
		e.onUpdate = fn
	}
}

// LocalEngine plays one game between two agents in process.
type LocalEngine struct {
	game     *game.Stonehenge
	agents   map[string]Agent
	maxMoves int
	onUpdate func(Update)
}

func NewLocalEngine(g *game.Stonehenge, p1, p2 Agent, options ...Option) *LocalEngine {
	if p1.Strategy == nil || p2.Strategy == nil {
		panic("both players need a strategy")
	}

	e := &LocalEngine{
		game:     g,
		agents:   map[string]Agent{game.P1: p1, game.P2: p2},
		maxMoves: MaxMoves,
		onUpdate: func(Update) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays from the game's current state and leaves the final state as the
// current one.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	state := e.game.Current()
	gameMetric := metrics.GameMetric{
		SideLength:     e.game.SideLength(),
		StartingPlayer: state.Player(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s is starting on side length %d", state.Player(), e.game.SideLength())

	step := 0
	for !e.game.IsOver(state) && step < e.maxMoves {
		player := state.Player()
		agent := e.agents[player]

		move, ok := e.ask(agent, state)
		if !ok {
			log.Warn().Msgf("%s has no legal move to offer, stopping the game", player)
			break
		}

		var searchMetrics searcher.SearchMetrics
		if agent.Metrics != nil {
			searchMetrics = agent.Metrics.Complete()
		}

		step++
		state = state.Play(move)
		e.game.SetCurrent(state)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          step,
			Player:        player,
			Move:          string(move),
			SearchMetrics: searchMetrics,
		})
		log.Debug().Msgf("move %d: %s claims %s", step, player, move)
		e.onUpdate(Update{Step: step, Player: player, Move: move, State: state})
	}

	winner := ""
	for _, player := range []string{game.P1, game.P2} {
		if e.game.IsWinner(player) {
			winner = player
		}
	}
	if winner != "" {
		log.Info().Msgf("game over after %d moves, winner: %s", step, winner)
	} else {
		log.Info().Msgf("stopped after %d moves without a winner", step)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	return winner, gameMetric, moveMetrics
}

func (e *LocalEngine) ask(agent Agent, state game.State) (game.Move, bool) {
	legal := state.LegalMoves()
	for attempt := 0; attempt <= agent.Retries; attempt++ {
		move := agent.Strategy.FindNextMove(state)
		if slices.Contains(legal, move) {
			return move, true
		}
		log.Warn().Msgf("%s answered with illegal move %q", state.Player(), move)
	}
	return game.NoMove, false
}
