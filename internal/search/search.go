// Package search picks moves for the automated player with a fixed-depth
// negamax search and alpha-beta pruning over the engine's move generator.
package search

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MateScore is the score of delivering mate at the root. Mates found
// further from the root score lower, so shorter mates are preferred.
const MateScore = 1000000

// infinity bounds every reachable score.
const infinity = MateScore + 1

// Stats records the work done by the most recent search.
type Stats struct {
	Nodes int
	Depth int
	Score int
}

// Searcher chooses moves for one side. It is not safe for concurrent use;
// give each goroutine its own Searcher and board.
type Searcher struct {
	cfg   *config.Config
	depth int
	rng   *rand.Rand
	stats Stats
}

// NewSearcher creates a searcher using cfg's search settings.
func NewSearcher(cfg *config.Config) *Searcher {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	sc := cfg.Search
	if sc == nil {
		sc = config.NewSearchConfig()
	}
	return &Searcher{
		cfg:   cfg,
		depth: sc.Depth,
		rng:   rand.New(rand.NewSource(sc.Seed)),
	}
}

// Depth returns the current search depth in plies.
func (s *Searcher) Depth() int {
	return s.depth
}

// AdjustDepth changes the search depth by delta. The change is ignored if
// the result would leave the supported range; the return value reports
// whether it was applied.
func (s *Searcher) AdjustDepth(delta int) bool {
	d := s.depth + delta
	if d < config.MinSearchDepth || d > config.MaxSearchDepth {
		return false
	}
	s.depth = d
	return true
}

// Stats returns statistics for the most recent ChooseMove.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Advantage returns the static evaluation of board from White's point of
// view.
func (s *Searcher) Advantage(board *chess.Board) int {
	return Evaluate(board)
}

// ChooseMove returns the best move for colour, or false if colour has no
// legal move. The board is restored before returning. When random play is
// configured a uniformly random legal move is returned instead.
func (s *Searcher) ChooseMove(board *chess.Board, colour chess.Colour) (chess.Move, bool) {
	if s.cfg.Search != nil && s.cfg.Search.Random {
		return s.RandomMove(board, colour)
	}

	s.stats = Stats{Depth: s.depth}
	moves := engine.LegalMoves(board, colour)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	best := moves[0]
	bestScore := -infinity
	alpha, beta := -infinity, infinity
	for _, m := range moves {
		score := -engine.Probe(board, m, func() int {
			return s.negamax(board, colour.Opposite(), s.depth-1, 1, -beta, -alpha)
		})
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	s.stats.Score = bestScore
	s.cfg.Logf(2, "search: depth %d nodes %d best %v score %d",
		s.stats.Depth, s.stats.Nodes, best, bestScore)
	return best, true
}

// negamax returns the score of the position for colour, the side to move.
func (s *Searcher) negamax(board *chess.Board, colour chess.Colour, depth, ply, alpha, beta int) int {
	s.stats.Nodes++

	if depth <= 0 {
		return colour.Sign() * Evaluate(board)
	}

	moves := engine.LegalMoves(board, colour)
	if len(moves) == 0 {
		if engine.IsInCheck(board, colour) {
			return -(MateScore - ply)
		}
		return 0
	}

	best := -infinity
	for _, m := range moves {
		score := -engine.Probe(board, m, func() int {
			return s.negamax(board, colour.Opposite(), depth-1, ply+1, -beta, -alpha)
		})
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
