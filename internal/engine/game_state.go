package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which a game is drawn.
const FiftyMoveLimit = 50

// Ending classifies how a position ends the game, if it does.
type Ending int

const (
	NotEnded Ending = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
)

func (e Ending) String() string {
	switch e {
	case NotEnded:
		return "not ended"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}

// IsCheckmate returns true if colour is in check with no legal moves.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal moves.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsFiftyMoveDraw returns true once the half-move clock reaches the limit.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// IsStalemateOrDraw returns true if colour is stalemated or the position is
// drawn by rule.
func IsStalemateOrDraw(board *chess.Board, colour chess.Colour) bool {
	return IsFiftyMoveDraw(board) || HasInsufficientMaterial(board) || IsStalemate(board, colour)
}

// Classify returns how the position ends the game for colour. Checkmate and
// stalemate take precedence over the other draw rules.
func Classify(board *chess.Board, colour chess.Colour) Ending {
	return classify(board, colour, HasLegalMoves(board, colour))
}

func classify(board *chess.Board, colour chess.Colour, hasMoves bool) Ending {
	if !hasMoves {
		if IsInCheck(board, colour) {
			return Checkmate
		}
		return Stalemate
	}
	if IsFiftyMoveDraw(board) {
		return FiftyMoveRule
	}
	if HasInsufficientMaterial(board) {
		return InsufficientMaterial
	}
	return NotEnded
}
