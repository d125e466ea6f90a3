package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   Ending
	}{
		{"opening", InitialFEN, chess.White, NotEnded},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, Checkmate},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", chess.Black, Checkmate},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, Stalemate},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 50 90", chess.White, FiftyMoveRule},
		{"forty-nine moves", "4k3/8/8/8/8/8/8/R3K3 w - - 49 90", chess.White, NotEnded},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, InsufficientMaterial},
		{"mate beats fifty moves", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 70 80", chess.Black, Checkmate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			testutil.AssertEqual(t, Classify(board, tt.colour), tt.want)
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	board := mustBoard(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	testutil.AssertFalse(t, IsCheckmate(board, chess.Black), "before the rook lift")

	Push(board, mustMove(t, board, "a1", "a8", chess.NoPiece))

	testutil.AssertTrue(t, IsInCheck(board, chess.Black))
	testutil.AssertTrue(t, IsCheckmate(board, chess.Black))
	testutil.AssertEqual(t, len(LegalMoves(board, chess.Black)), 0)
	testutil.AssertFalse(t, IsStalemateOrDraw(board, chess.Black))
}

func TestIsStalemateOrDraw(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, true},
		{"stalemated side only", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.White, false},
		{"insufficient material", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", chess.White, true},
		{"fifty-move clock", "4k3/8/8/8/8/8/8/R3K3 b - - 50 90", chess.Black, true},
		{"ongoing", InitialFEN, chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			testutil.AssertEqual(t, IsStalemateOrDraw(board, tt.colour), tt.want)
		})
	}
}

func TestHalfmoveClock(t *testing.T) {
	board := mustBoard(t, "4k3/4p3/8/8/8/8/8/R3K3 w - - 48 90")

	Push(board, mustMove(t, board, "a1", "a2", chess.NoPiece))
	testutil.AssertEqual(t, board.HalfmoveClock, 49)
	testutil.AssertFalse(t, IsFiftyMoveDraw(board))

	Push(board, mustMove(t, board, "e8", "d8", chess.NoPiece))
	testutil.AssertEqual(t, board.HalfmoveClock, 50)
	testutil.AssertTrue(t, IsStalemateOrDraw(board, chess.White))

	Pop(board)
	Push(board, mustMove(t, board, "e7", "e5", chess.NoPiece))
	testutil.AssertEqual(t, board.HalfmoveClock, 0, "pawn move resets the clock")
}
