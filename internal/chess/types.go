// Package chess provides core chess types: colours, piece kinds, squares,
// moves and the board that owns every piece of a game.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White and -1 for Black.
func (c Colour) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind identifies the kind of a piece independent of its colour.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase FEN letter of a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ColouredLetter returns the FEN letter of a piece: uppercase for White,
// lowercase for Black.
func ColouredLetter(kind PieceKind, colour Colour) byte {
	letter := kind.Letter()
	if colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// KindFromLetter converts a FEN letter (either case) to a piece kind and
// the colour implied by its case. ok is false for any other character.
func KindFromLetter(c byte) (kind PieceKind, colour Colour, ok bool) {
	colour = White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, colour, true
	case 'N':
		return Knight, colour, true
	case 'B':
		return Bishop, colour, true
	case 'R':
		return Rook, colour, true
	case 'Q':
		return Queen, colour, true
	case 'K':
		return King, colour, true
	}
	return NoPiece, White, false
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a zero-indexed (file, rank) pair; a1 is (0, 0) and h8 is (7, 7).
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for constructing a Square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard returns true if the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by (df, dr). The result may be off
// the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts algebraic text such as "e4" or "E4" to a Square.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return Square{}, false
	}
	f, r := text[0], text[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Square{}, false
	}
	return Square{File: int(f - 'a'), Rank: int(r - '1')}, true
}

// Move is a fully described move: what moves, whose it is, and where.
type Move struct {
	Kind   PieceKind
	Colour Colour
	From   Square
	To     Square

	// Promotion is the kind a pawn becomes on the last rank. NoPiece leaves
	// the pawn awaiting a promotion choice.
	Promotion PieceKind
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(ColouredLetter(m.Promotion, Black))
	}
	return s
}

// CastleRights is the set of four castling flags.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastleRights = 0
	AllCastling              = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has returns true if every flag in r is set.
func (c CastleRights) Has(r CastleRights) bool {
	return c&r == r
}

// Kingside returns the kingside flag for a colour.
func Kingside(colour Colour) CastleRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside flag for a colour.
func Queenside(colour Colour) CastleRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// EnPassant records the square a pawn skipped over with a double step and
// the colour of that pawn.
type EnPassant struct {
	Valid  bool
	Target Square
	Colour Colour
}

// HomeRank returns the back rank of a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank a colour's pawns start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which a colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// PawnDirection returns +1 for White, -1 for Black.
func PawnDirection(colour Colour) int {
	return colour.Sign()
}
