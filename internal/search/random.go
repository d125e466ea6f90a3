package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// RandomMove returns a uniformly random legal move for colour, or false if
// there is none. The sequence is reproducible for a given seed.
func (s *Searcher) RandomMove(board *chess.Board, colour chess.Colour) (chess.Move, bool) {
	moves := engine.LegalMoves(board, colour)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	s.stats = Stats{}
	m := moves[s.rng.Intn(len(moves))]
	s.cfg.Logf(2, "search: random move %v of %d", m, len(moves))
	return m, true
}
