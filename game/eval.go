package game

import "math"

// EstimateOutcome is the Evaluate form of BoardState.EstimateOutcome.
func EstimateOutcome(s State) float64 {
	bs, ok := s.(*BoardState)
	if !ok {
		panic("unexpected state type")
	}
	return bs.EstimateOutcome()
}

// EstimateOutcome guesses, in [Lose, Win], the best result the player to move
// can reach by looking two moves ahead and no further. A move that leaves
// the opponent without a reply is a win; a move the opponent can answer by
// ending the game is a loss; anything else scores the share of ley-lines the
// player holds after the reply.
func (s *BoardState) EstimateOutcome() float64 {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return Lose
	}

	player := s.Player()
	best := math.Inf(-1)
	for _, move := range moves {
		best = math.Max(best, s.lookahead(move, player))
	}
	return best
}

func (s *BoardState) lookahead(move Move, player string) float64 {
	next := s.Play(move)
	replies := next.LegalMoves()
	if len(replies) == 0 {
		return Win
	}

	total := float64(len(s.lines))
	best := math.Inf(-1)
	for _, reply := range replies {
		after := next.Play(reply).(*BoardState)
		if len(after.LegalMoves()) == 0 {
			return Lose
		}
		best = math.Max(best, float64(after.Outcome().Of(player))/total)
	}
	return best
}
