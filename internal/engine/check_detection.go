package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

var (
	knightOffsets   = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	slidingDirsBoth = [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(board, board.KingSquare(colour), colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Pieces of the other colour only matter as blockers.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, relative to their direction.
	pawnRank := sq.Rank - chess.PawnDirection(byColour)
	for _, df := range [2]int{-1, 1} {
		if isPieceOf(board, chess.Sq(sq.File+df, pawnRank), chess.Pawn, byColour) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if isPieceOf(board, sq.Offset(off[0], off[1]), chess.Knight, byColour) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if isPieceOf(board, sq.Offset(off[0], off[1]), chess.King, byColour) {
			return true
		}
	}

	for _, dir := range diagonalDirs {
		if kind, ok := firstOnRay(board, sq, dir, byColour); ok && (kind == chess.Bishop || kind == chess.Queen) {
			return true
		}
	}

	for _, dir := range straightDirs {
		if kind, ok := firstOnRay(board, sq, dir, byColour); ok && (kind == chess.Rook || kind == chess.Queen) {
			return true
		}
	}

	return false
}

// firstOnRay walks from sq along dir and returns the kind of the first
// piece found if it belongs to colour.
func firstOnRay(board *chess.Board, sq chess.Square, dir [2]int, colour chess.Colour) (chess.PieceKind, bool) {
	cur := sq.Offset(dir[0], dir[1])
	for cur.OnBoard() {
		if p, ok := board.PieceAt(cur); ok {
			return p.Kind, p.Colour == colour
		}
		cur = cur.Offset(dir[0], dir[1])
	}
	return chess.NoPiece, false
}

// isPieceOf returns true if sq holds a live piece of the given kind and colour.
func isPieceOf(board *chess.Board, sq chess.Square, kind chess.PieceKind, colour chess.Colour) bool {
	p, ok := board.PieceAt(sq)
	return ok && p.Kind == kind && p.Colour == colour
}
