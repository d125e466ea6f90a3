package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// mustBoard builds a board from fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// mustSquare parses algebraic text such as "e4" or fails the test.
func mustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(text)
	if !ok {
		t.Fatalf("ParseSquare(%q) failed", text)
	}
	return sq
}

// mustMove builds the move of the piece on from, promoting to promotion.
func mustMove(t testing.TB, board *chess.Board, from, to string, promotion chess.PieceKind) chess.Move {
	t.Helper()
	f := mustSquare(t, from)
	p, ok := board.PieceAt(f)
	if !ok {
		t.Fatalf("no piece on %s", from)
	}
	return chess.Move{Kind: p.Kind, Colour: p.Colour, From: f, To: mustSquare(t, to), Promotion: promotion}
}

// snapshot is a comparable image of everything a board holds.
type snapshot struct {
	State  chess.LumpedState
	Pieces []chess.Piece
}

func takeSnapshot(board *chess.Board) snapshot {
	s := snapshot{State: board.State()}
	for i := 0; i < board.NumPieces(); i++ {
		s.Pieces = append(s.Pieces, board.Piece(chess.PieceID(i)))
	}
	return s
}

// suiteFENs covers castling, en passant, promotion, pins and checks.
var suiteFENs = map[string]string{
	"Initial":   InitialFEN,
	"Kiwipete":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Endgame":   "8/2p5/3p4/KP5r/1R3p2/6k1/4P3/8 w - - 0 1",
	"Promotion": "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"Mixed":     "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"EnPassant": "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
	"Pinned":    "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
}
