package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnMoveLegal applies the occupancy rules for a pawn move that already
// has a valid pawn shape: diagonals must capture, straight moves must land
// on an empty square, and a double step needs the skipped square empty.
func pawnMoveLegal(board *chess.Board, pawn chess.Piece, from, to chess.Square) bool {
	target, occupied := board.PieceAt(to)

	if to.File != from.File {
		if occupied {
			return target.Colour != pawn.Colour
		}
		return isEnPassantCapture(board, pawn, from, to)
	}

	if occupied {
		return false
	}
	dir := chess.PawnDirection(pawn.Colour)
	if to.Rank-from.Rank == 2*dir {
		return board.IsEmpty(chess.Sq(from.File, from.Rank+dir))
	}
	return true
}

// isEnPassantCapture returns true if a diagonal pawn move onto the stored
// en passant target captures the opposing pawn beside it.
func isEnPassantCapture(board *chess.Board, pawn chess.Piece, from, to chess.Square) bool {
	if pawn.Kind != chess.Pawn || from.File == to.File {
		return false
	}
	ep := board.EnPassant
	if !ep.Valid || ep.Target != to || ep.Colour == pawn.Colour {
		return false
	}
	return isPieceOf(board, chess.Sq(to.File, from.Rank), chess.Pawn, ep.Colour)
}
