package chess

import "fmt"

// Placement is one piece of a LumpedState.
type Placement struct {
	Kind   PieceKind
	Colour Colour
	Square Square
}

// LumpedState is the complete board and game state in a form that can be
// serialized, compared and loaded into a Board.
type LumpedState struct {
	// Placements are ordered as FEN lists them: rank 8 to rank 1, file a
	// to file h within a rank.
	Placements    []Placement
	Castling      CastleRights
	EnPassant     EnPassant
	ToMove        Colour
	HalfmoveClock int
	MoveNumber    int
}

// NewInitialState returns the state of the standard starting position.
func NewInitialState() LumpedState {
	b := NewBoard()
	b.SetupInitialPosition()
	return b.State()
}

// State captures the board's current state.
func (b *Board) State() LumpedState {
	s := LumpedState{
		Castling:      b.Castling,
		EnPassant:     b.EnPassant,
		ToMove:        b.ToMove,
		HalfmoveClock: b.HalfmoveClock,
		MoveNumber:    b.MoveNumber,
	}
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			id := b.grid[file][rank]
			if id == NoPieceID {
				continue
			}
			p := b.pieces[id]
			s.Placements = append(s.Placements, Placement{Kind: p.Kind, Colour: p.Colour, Square: p.Square})
		}
	}
	return s
}

// LoadState replaces the board's contents with s. The board is left
// unchanged if s does not describe a playable position: each side needs
// exactly one king and no pawn may stand on a back rank.
//
// Castling flags whose king or rook is not on its home square are dropped,
// so a loaded board always satisfies the castling-rights invariant.
func (b *Board) LoadState(s LumpedState) error {
	nb := NewBoard()
	for _, p := range s.Placements {
		if p.Kind == Pawn && (p.Square.Rank == 0 || p.Square.Rank == BoardSize-1) {
			return fmt.Errorf("pawn on back rank %v", p.Square)
		}
		if _, err := nb.Place(p.Kind, p.Colour, p.Square); err != nil {
			return err
		}
	}
	for _, colour := range []Colour{White, Black} {
		if nb.kings[colour] == NoPieceID {
			return fmt.Errorf("no %s king", colour)
		}
	}
	if s.MoveNumber < 1 || s.HalfmoveClock < 0 {
		return fmt.Errorf("invalid move counters %d %d", s.HalfmoveClock, s.MoveNumber)
	}

	nb.ToMove = s.ToMove
	nb.HalfmoveClock = s.HalfmoveClock
	nb.MoveNumber = s.MoveNumber
	nb.Castling = s.Castling & nb.supportedCastling()
	if s.EnPassant.Valid && s.EnPassant.Target.OnBoard() {
		nb.EnPassant = s.EnPassant
	}

	*b = *nb
	return nil
}

// supportedCastling returns the castling flags whose king and rook stand on
// their home squares.
func (b *Board) supportedCastling() CastleRights {
	var rights CastleRights
	for _, colour := range []Colour{White, Black} {
		home := HomeRank(colour)
		if !b.isPiece(Sq(4, home), King, colour) {
			continue
		}
		if b.isPiece(Sq(7, home), Rook, colour) {
			rights |= Kingside(colour)
		}
		if b.isPiece(Sq(0, home), Rook, colour) {
			rights |= Queenside(colour)
		}
	}
	return rights
}

func (b *Board) isPiece(sq Square, kind PieceKind, colour Colour) bool {
	p, ok := b.PieceAt(sq)
	return ok && p.Kind == kind && p.Colour == colour
}
