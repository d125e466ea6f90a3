package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// isCastlingShape returns true for a king moving two files along its rank.
func isCastlingShape(from, to chess.Square) bool {
	df := to.File - from.File
	return from.Rank == to.Rank && (df == 2 || df == -2)
}

// castlingRookSquares returns where the castling rook starts and ends for a
// king landing on kingTo.
func castlingRookSquares(colour chess.Colour, kingTo chess.Square) (from, to chess.Square) {
	rank := chess.HomeRank(colour)
	if kingTo.File > kingFile {
		return chess.Sq(kingsideRookFile, rank), chess.Sq(kingTo.File-1, rank)
	}
	return chess.Sq(queensideRookFile, rank), chess.Sq(kingTo.File+1, rank)
}

// castlingRight returns the rights flag a king landing on kingTo needs.
func castlingRight(colour chess.Colour, kingTo chess.Square) chess.CastleRights {
	if kingTo.File > kingFile {
		return chess.Kingside(colour)
	}
	return chess.Queenside(colour)
}

// canCastle checks every castling precondition except the final
// self-check test.
func canCastle(board *chess.Board, king chess.Piece, to chess.Square) bool {
	colour := king.Colour
	home := chess.HomeRank(colour)
	from := king.Square

	if king.HasMoved || from != chess.Sq(kingFile, home) || to.Rank != home {
		return false
	}
	if !board.Castling.Has(castlingRight(colour, to)) {
		return false
	}

	rookFrom, _ := castlingRookSquares(colour, to)
	rook, ok := board.PieceAt(rookFrom)
	if !ok || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
		return false
	}

	if !isPathClear(board, from, rookFrom) {
		return false
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(board, from, enemy) {
		return false
	}
	step := 1
	if to.File < from.File {
		step = -1
	}
	for f := from.File + step; f != to.File+step; f += step {
		if IsSquareAttacked(board, chess.Sq(f, home), enemy) {
			return false
		}
	}
	return true
}

// clearRookRights removes the castling right tied to a rook that moves
// away from, or is captured on, its home corner.
func clearRookRights(board *chess.Board, colour chess.Colour, sq chess.Square) {
	home := chess.HomeRank(colour)
	if sq.Rank != home {
		return
	}
	switch sq.File {
	case kingsideRookFile:
		board.Castling &^= chess.Kingside(colour)
	case queensideRookFile:
		board.Castling &^= chess.Queenside(colour)
	}
}
