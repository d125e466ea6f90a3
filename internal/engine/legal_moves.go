package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// LegalMoves returns every legal move for colour, one per origin and
// destination pair. Pawn moves to the last rank carry a queen promotion.
// Moves are ordered by piece arena slot, then by candidate direction, so
// the order is deterministic for a given board.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(board, colour, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachLegalMove(board, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	p, ok := board.PieceAt(from)
	if !ok {
		return nil
	}
	var moves []chess.Move
	forEachCandidate(board, p, func(to chess.Square) bool {
		if IsLegal(board, p.Colour, from, to) {
			moves = append(moves, newMove(p, from, to))
		}
		return true
	})
	return moves
}

// forEachLegalMove calls fn for each legal move of colour until fn
// returns false.
func forEachLegalMove(board *chess.Board, colour chess.Colour, fn func(chess.Move) bool) {
	for i := 0; i < board.NumPieces(); i++ {
		p := board.Piece(chess.PieceID(i))
		if p.Captured || p.Colour != colour {
			continue
		}
		from := p.Square
		stopped := false
		forEachCandidate(board, p, func(to chess.Square) bool {
			if IsLegal(board, colour, from, to) && !fn(newMove(p, from, to)) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
	}
}

// forEachCandidate calls fn with each square the piece might move to,
// a superset of its legal destinations, until fn returns false.
func forEachCandidate(board *chess.Board, p chess.Piece, fn func(chess.Square) bool) {
	from := p.Square

	emit := func(df, dr int) bool {
		to := from.Offset(df, dr)
		if !to.OnBoard() {
			return true
		}
		return fn(to)
	}

	switch p.Kind {
	case chess.Pawn:
		dir := chess.PawnDirection(p.Colour)
		for _, off := range [4][2]int{{0, dir}, {0, 2 * dir}, {-1, dir}, {1, dir}} {
			if !emit(off[0], off[1]) {
				return
			}
		}

	case chess.Knight:
		for _, off := range knightOffsets {
			if !emit(off[0], off[1]) {
				return
			}
		}

	case chess.King:
		for _, off := range kingOffsets {
			if !emit(off[0], off[1]) {
				return
			}
		}
		if !emit(2, 0) {
			return
		}
		emit(-2, 0)

	case chess.Bishop:
		forEachRaySquare(board, from, diagonalDirs[:], fn)
	case chess.Rook:
		forEachRaySquare(board, from, straightDirs[:], fn)
	case chess.Queen:
		forEachRaySquare(board, from, slidingDirsBoth[:], fn)
	}
}

// forEachRaySquare walks each direction up to and including the first
// occupied square.
func forEachRaySquare(board *chess.Board, from chess.Square, dirs [][2]int, fn func(chess.Square) bool) {
	for _, dir := range dirs {
		cur := from.Offset(dir[0], dir[1])
		for cur.OnBoard() {
			if !fn(cur) {
				return
			}
			if !board.IsEmpty(cur) {
				break
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
}
