package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// HasInsufficientMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for i := 0; i < board.NumPieces(); i++ {
		p := board.Piece(chess.PieceID(i))
		if p.Captured || p.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if p.Kind == chess.Pawn || p.Kind == chess.Rook || p.Kind == chess.Queen {
			return false
		}

		if p.Colour == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = p.Square.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = p.Square.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// IsStandardMaterial returns true if each side has exactly the material of
// the starting position.
func IsStandardMaterial(board *chess.Board) bool {
	expected := map[chess.PieceKind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	var actual [2]map[chess.PieceKind]int
	actual[chess.White] = make(map[chess.PieceKind]int)
	actual[chess.Black] = make(map[chess.PieceKind]int)
	for i := 0; i < board.NumPieces(); i++ {
		p := board.Piece(chess.PieceID(i))
		if !p.Captured {
			actual[p.Colour][p.Kind]++
		}
	}

	for _, counts := range actual {
		for kind, n := range expected {
			if counts[kind] != n {
				return false
			}
		}
	}
	return true
}
