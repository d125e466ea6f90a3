package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MakeMove applies a move to the board and returns the record needed to
// undo it. It updates placement, captures (including en passant), the
// castling rook, promotion, castling rights, the en passant target, both
// move counters and the side to move.
//
// MakeMove does not check legality; callers validate with IsLegal first.
func MakeMove(board *chess.Board, move chess.Move) chess.Undo {
	id := board.At(move.From)
	if id == chess.NoPieceID {
		panic(fmt.Sprintf("engine: no piece on %v for move %v", move.From, move))
	}
	p := board.Piece(id)

	u := chess.Undo{
		Move:          move,
		Moved:         id,
		MovedFrom:     move.From,
		MovedHad:      p.HasMoved,
		MovedKind:     p.Kind,
		Captured:      chess.NoPieceID,
		RookID:        chess.NoPieceID,
		Castling:      board.Castling,
		EnPassant:     board.EnPassant,
		HalfmoveClock: board.HalfmoveClock,
		MoveNumber:    board.MoveNumber,
		ToMove:        board.ToMove,
	}

	captured := board.At(move.To)
	if captured == chess.NoPieceID && isEnPassantCapture(board, p, move.From, move.To) {
		captured = board.At(chess.Sq(move.To.File, move.From.Rank))
	}
	if captured != chess.NoPieceID {
		victim := board.Piece(captured)
		board.Capture(captured)
		u.Captured = captured
		if victim.Kind == chess.Rook {
			clearRookRights(board, victim.Colour, victim.Square)
		}
	}

	board.Relocate(id, move.To)
	board.SetMoved(id, true)

	switch p.Kind {
	case chess.King:
		if isCastlingShape(move.From, move.To) {
			rookFrom, rookTo := castlingRookSquares(p.Colour, move.To)
			rook := board.At(rookFrom)
			u.RookID = rook
			u.RookFrom = rookFrom
			u.RookTo = rookTo
			u.RookHadMoved = board.Piece(rook).HasMoved
			board.Relocate(rook, rookTo)
			board.SetMoved(rook, true)
		}
		board.Castling &^= chess.Kingside(p.Colour) | chess.Queenside(p.Colour)
	case chess.Rook:
		clearRookRights(board, p.Colour, move.From)
	case chess.Pawn:
		if move.Promotion != chess.NoPiece && move.To.Rank == chess.PromotionRank(p.Colour) {
			board.SetKind(id, move.Promotion)
		}
	}

	board.EnPassant = chess.EnPassant{}
	if p.Kind == chess.Pawn && move.To.Rank-move.From.Rank == 2*chess.PawnDirection(p.Colour) {
		board.EnPassant = chess.EnPassant{
			Valid:  true,
			Target: chess.Sq(move.From.File, move.From.Rank+chess.PawnDirection(p.Colour)),
			Colour: p.Colour,
		}
	}

	if p.Kind == chess.Pawn || captured != chess.NoPieceID {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if p.Colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = p.Colour.Opposite()

	return u
}

// UnmakeMove reverses a move applied by MakeMove, restoring the exact
// prior state.
func UnmakeMove(board *chess.Board, u chess.Undo) {
	if u.RookID != chess.NoPieceID {
		board.Relocate(u.RookID, u.RookFrom)
		board.SetMoved(u.RookID, u.RookHadMoved)
	}

	board.SetKind(u.Moved, u.MovedKind)
	board.Relocate(u.Moved, u.MovedFrom)
	board.SetMoved(u.Moved, u.MovedHad)

	if u.Captured != chess.NoPieceID {
		board.Revive(u.Captured)
	}

	board.Castling = u.Castling
	board.EnPassant = u.EnPassant
	board.HalfmoveClock = u.HalfmoveClock
	board.MoveNumber = u.MoveNumber
	board.ToMove = u.ToMove
}

// Push applies a move and records it on the board's undo stack.
func Push(board *chess.Board, move chess.Move) {
	board.PushUndo(MakeMove(board, move))
}

// Pop reverses the most recent Push.
func Pop(board *chess.Board) {
	u, ok := board.PopUndo()
	if !ok {
		panic("engine: Pop with empty undo stack")
	}
	UnmakeMove(board, u)
}

// Probe applies a move, evaluates fn on the resulting position and undoes
// the move before returning, even if fn panics.
func Probe[T any](board *chess.Board, move chess.Move, fn func() T) T {
	Push(board, move)
	defer Pop(board)
	return fn()
}
