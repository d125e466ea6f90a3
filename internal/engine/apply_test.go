package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		promotion chess.PieceKind
		want      string
	}{
		{
			name: "double step sets en passant target",
			fen:  InitialFEN,
			from: "e2", to: "e4",
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name: "quiet piece move increments clock",
			fen:  InitialFEN,
			from: "g1", to: "f3",
			want: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name: "white kingside castle",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			from: "e1", to: "g1",
			want: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name: "black queenside castle",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			from: "e8", to: "c8",
			want: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name: "en passant capture removes the passed pawn",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			from: "e5", to: "f6",
			want: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name: "underpromotion",
			fen:  "8/4P1k1/8/8/8/8/8/4K3 w - - 3 40",
			from: "e7", to: "e8", promotion: chess.Knight,
			want: "4N3/6k1/8/8/8/8/8/4K3 b - - 0 40",
		},
		{
			name: "rook capture on a corner clears both rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: "a1", to: "a8",
			want: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name: "king move clears both rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 5 9",
			from: "e8", to: "d7",
			want: "r6r/3k4/8/8/8/8/8/R3K2R w KQ - 6 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			move := mustMove(t, board, tt.from, tt.to, tt.promotion)

			MakeMove(board, move)

			testutil.AssertEqual(t, BoardToFEN(board), tt.want)
		})
	}
}

func TestUnmakeMove_RestoresEveryLegalMove(t *testing.T) {
	for name, fen := range suiteFENs {
		t.Run(name, func(t *testing.T) {
			board := mustBoard(t, fen)
			before := takeSnapshot(board)

			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				for _, m := range LegalMoves(board, colour) {
					u := MakeMove(board, m)
					UnmakeMove(board, u)
					testutil.AssertEqual(t, takeSnapshot(board), before, "after %v", m)
				}
			}
		})
	}
}

func TestPushPop_Nested(t *testing.T) {
	board := NewInitialBoard()
	before := takeSnapshot(board)

	moves := [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}, {"d8", "d5"}}
	for _, mv := range moves {
		Push(board, mustMove(t, board, mv[0], mv[1], chess.NoPiece))
	}
	testutil.AssertEqual(t, board.Depth(), len(moves))
	testutil.AssertEqual(t, BoardToFEN(board), "rnb1kbnr/ppp1pppp/8/3q4/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")

	for range moves {
		Pop(board)
	}
	testutil.AssertEqual(t, takeSnapshot(board), before)
}

func TestPop_EmptyStackPanics(t *testing.T) {
	board := NewInitialBoard()
	testutil.AssertPanics(t, func() { Pop(board) }, "Pop() on an empty stack")
}

func TestProbe_UndoesOnReturn(t *testing.T) {
	board := NewInitialBoard()
	before := takeSnapshot(board)

	got := Probe(board, mustMove(t, board, "e2", "e4", chess.NoPiece), func() string {
		return BoardToFEN(board)
	})

	testutil.AssertEqual(t, got, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, takeSnapshot(board), before)
	testutil.AssertEqual(t, board.Depth(), 0)
}

func TestMakeMove_CapturedPieceKeepsSquare(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	victim := board.At(mustSquare(t, "d5"))

	u := MakeMove(board, mustMove(t, board, "e4", "d5", chess.NoPiece))

	p := board.Piece(victim)
	testutil.AssertTrue(t, p.Captured, "victim should be tombstoned")
	testutil.AssertEqual(t, p.Square, mustSquare(t, "d5"))
	testutil.AssertEqual(t, u.Captured, victim)
	testutil.AssertEqual(t, board.HalfmoveClock, 0)
}
