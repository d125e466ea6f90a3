// Package engine implements the rules of chess on top of the board model:
// move legality, move generation, move execution with exact undo, check
// detection and game-end conditions.
package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsLegal returns true if the piece on from may legally move to to for the
// given colour. The board is left exactly as it was found.
//
// Checks run in order: both squares on the board and distinct, a piece of
// colour on from, to not held by a friendly piece, the piece's movement
// rule (including castling, en passant and pawn occupancy), a clear path
// for sliders, and finally that the move does not leave the mover's king
// attacked.
func IsLegal(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	if !from.OnBoard() || !to.OnBoard() || from == to {
		return false
	}

	p, ok := board.PieceAt(from)
	if !ok || p.Colour != colour {
		return false
	}
	if target, ok := board.PieceAt(to); ok && target.Colour == colour {
		return false
	}

	switch {
	case p.Kind == chess.King && isCastlingShape(from, to):
		if !canCastle(board, p, to) {
			return false
		}
	case !chess.CanReach(p.Kind, p.Colour, from, to):
		return false
	case p.Kind == chess.Pawn && !pawnMoveLegal(board, p, from, to):
		return false
	case chess.IsSlider(p.Kind) && !isPathClear(board, from, to):
		return false
	}

	return !leavesKingInCheck(board, newMove(p, from, to))
}

// leavesKingInCheck plays move on the board, tests the mover's king and
// takes the move back.
func leavesKingInCheck(board *chess.Board, move chess.Move) bool {
	return Probe(board, move, func() bool {
		return IsInCheck(board, move.Colour)
	})
}

// newMove builds a move for piece p. A pawn reaching the last rank is
// promoted to a queen; callers wanting another piece set Promotion.
func newMove(p chess.Piece, from, to chess.Square) chess.Move {
	m := chess.Move{Kind: p.Kind, Colour: p.Colour, From: from, To: to}
	if p.Kind == chess.Pawn && to.Rank == chess.PromotionRank(p.Colour) {
		m.Promotion = chess.Queen
	}
	return m
}
