package searcher

import "stonehenge/game"

type status int

const (
	unexpanded status = iota
	// children pushed, waiting for their scores
	expanded
	resolved
)

// Node is one state of the explicit search tree. Score is from the point of
// view of the player who moved into the node.
type Node struct {
	ID       int
	Move     game.Move // move that led here, NoMove at the root
	State    game.State
	Children []*Node
	Score    float64
	status   status
}

func newNode(id int, move game.Move, state game.State) *Node {
	return &Node{ID: id, Move: move, State: state}
}

func (n *Node) Resolved() bool {
	return n.status == resolved
}

func (n *Node) resolve(score float64) {
	n.Score = score
	n.status = resolved
}

// best returns the child with the highest score. Among equal scores the child
// with the fewest children of its own wins, and the earlier one on a tie.
func (n *Node) best() *Node {
	var best *Node
	for _, child := range n.Children {
		switch {
		case best == nil, child.Score > best.Score:
			best = child
		case child.Score == best.Score && len(child.Children) < len(best.Children):
			best = child
		}
	}
	return best
}
