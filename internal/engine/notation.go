package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseMoveText parses a move given as two squares, such as "e2" and "E4".
// Case and surrounding whitespace are ignored.
func ParseMoveText(from, to string) (chess.Square, chess.Square, error) {
	f, err := parseSquareText(from)
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	t, err := parseSquareText(to)
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	return f, t, nil
}

func parseSquareText(text string) (chess.Square, error) {
	sq, ok := chess.ParseSquare(strings.ToLower(strings.TrimSpace(text)))
	if !ok {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Field:    "square",
			Expected: "file a-h and rank 1-8",
			Got:      text,
		}
	}
	return sq, nil
}

// ParseLongAlgebraic parses a move such as "e2e4" or "e7e8n".
func ParseLongAlgebraic(text string) (from, to chess.Square, promotion chess.PieceKind, err error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return from, to, chess.NoPiece, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Field:    "move",
			Expected: "from and to squares",
			Got:      text,
		}
	}
	if from, to, err = ParseMoveText(text[0:2], text[2:4]); err != nil {
		return from, to, chess.NoPiece, err
	}
	if len(text) == 5 {
		if promotion, err = ParsePromotion(text[4:]); err != nil {
			return from, to, chess.NoPiece, err
		}
	}
	return from, to, promotion, nil
}

// ParsePromotion parses the piece a pawn promotes to: n, b, r or q in
// either case.
func ParsePromotion(text string) (chess.PieceKind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "n":
		return chess.Knight, nil
	case "b":
		return chess.Bishop, nil
	case "r":
		return chess.Rook, nil
	case "q":
		return chess.Queen, nil
	}
	return chess.NoPiece, &errors.ParseError{
		Err:      errors.ErrInvalidMoveText,
		Field:    "promotion",
		Expected: "one of n, b, r, q",
		Got:      text,
	}
}
