package searcher

import (
	"stonehenge/game"

	"github.com/rs/zerolog/log"
)

// Iterative performs the same negamax search as Recursive on an explicit
// stack, keeping the whole tree in memory.
type Iterative struct {
	game    game.Game
	metrics MetricsCollector
}

func NewIterative(g game.Game, options ...Option) *Iterative {
	c := newConfig(options)
	return &Iterative{game: g, metrics: c.metrics}
}

func (it *Iterative) FindNextMove(state game.State) game.Move {
	if len(state.LegalMoves()) == 0 {
		return game.NoMove
	}

	root := it.Search(state)
	if m := it.metrics.Complete(); collecting(it.metrics) {
		log.Debug().Msgf("iterative search built %d nodes (%d leaves) in %v", m.Nodes, m.Leaves, m.Duration)
	}
	return root.best().Move
}

// Search builds and scores the full tree below state and returns its root.
// The root score is from the point of view of the player who moved into
// state, so it is the negation of the value for the player to move.
func (it *Iterative) Search(state game.State) *Node {
	it.metrics.Start()
	nextID := 0
	root := newNode(nextID, game.NoMove, state)
	stack := []*Node{root}

	for len(stack) > 0 {
		top := len(stack) - 1
		node := stack[top]
		stack = stack[:top]

		switch node.status {
		case unexpanded:
			it.metrics.AddNode()
			moves := node.State.LegalMoves()
			if len(moves) == 0 {
				it.metrics.AddLeaf()
				node.resolve(-terminalScore(it.game, node.State))
				continue
			}

			node.status = expanded
			stack = append(stack, node)
			node.Children = make([]*Node, len(moves))
			for i, move := range moves {
				nextID++
				node.Children[i] = newNode(nextID, move, node.State.Play(move))
				stack = append(stack, node.Children[i])
			}
		case expanded:
			scores := make([]float64, len(node.Children))
			for i, child := range node.Children {
				scores[i] = child.Score
			}
			node.resolve(-maxScore(scores))
		default:
			panic("resolved node on the search stack")
		}
	}
	return root
}
