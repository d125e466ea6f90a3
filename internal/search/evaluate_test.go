package search

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want func(int) bool
	}{
		{"initial is balanced", engine.InitialFEN, func(s int) bool { return s == 0 }},
		{"white up a queen", "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", func(s int) bool { return s > 800 }},
		{"black up a rook", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1", func(s int) bool { return s < -400 }},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", func(s int) bool { return s == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(mustBoard(t, tt.fen))
			testutil.AssertTrue(t, tt.want(got), "Evaluate() = %d", got)
		})
	}
}

func TestEvaluate_MirrorSymmetry(t *testing.T) {
	// Swapping colours and flipping ranks negates the score.
	white := mustBoard(t, "4k3/8/8/8/3N4/8/1P6/4K3 w - - 0 1")
	black := mustBoard(t, "4k3/1p6/8/3n4/8/8/8/4K3 w - - 0 1")

	testutil.AssertEqual(t, Evaluate(black), -Evaluate(white))
}

func TestPieceScore(t *testing.T) {
	centre := PieceScore(chess.Knight, chess.White, chess.Sq(3, 3))
	corner := PieceScore(chess.Knight, chess.White, chess.Sq(0, 0))
	testutil.AssertTrue(t, centre > corner, "centre %d, corner %d", centre, corner)

	// Pawns gain value as they advance toward promotion.
	testutil.AssertTrue(t,
		PieceScore(chess.Pawn, chess.White, chess.Sq(4, 6)) > PieceScore(chess.Pawn, chess.White, chess.Sq(4, 2)))
	testutil.AssertTrue(t,
		PieceScore(chess.Pawn, chess.Black, chess.Sq(4, 1)) > PieceScore(chess.Pawn, chess.Black, chess.Sq(4, 5)))
}

func TestAdvantage(t *testing.T) {
	s, _ := newSearcher(t, 1)
	board := mustBoard(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertEqual(t, s.Advantage(board), Evaluate(board))
}
