package chess

import "fmt"

// MaxPieces is the capacity of a board's piece arena. Promotion changes the
// kind of an existing record, so a game never needs more slots than it
// started with.
const MaxPieces = 32

// PieceID addresses a piece record in a board's arena. IDs are stable for
// the lifetime of a board.
type PieceID int

// NoPieceID marks an empty square or an absent piece.
const NoPieceID PieceID = -1

// Piece is one record in the board's arena.
type Piece struct {
	Kind        PieceKind
	Colour      Colour
	Square      Square
	StartSquare Square
	HasMoved    bool

	// Captured is the tombstone flag: a captured piece keeps its record
	// (and last square) so that an undo can bring it back.
	Captured bool
}

// Board holds all state needed to play a game: every piece, an occupancy
// grid, castling rights, the en passant target and the move counters.
type Board struct {
	pieces [MaxPieces]Piece
	count  int

	// grid[file][rank] is the ID of the live piece on that square.
	grid [BoardSize][BoardSize]PieceID

	// kings tracks each side's king for check detection, indexed by Colour.
	kings [2]PieceID

	// Who has the next move.
	ToMove Colour

	// The current full-move number, starting at 1.
	MoveNumber int

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	Castling  CastleRights
	EnPassant EnPassant

	history []Undo
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear removes every piece and resets metadata to the start of a game.
func (b *Board) Clear() {
	b.pieces = [MaxPieces]Piece{}
	b.count = 0
	for f := 0; f < BoardSize; f++ {
		for r := 0; r < BoardSize; r++ {
			b.grid[f][r] = NoPieceID
		}
	}
	b.kings = [2]PieceID{NoPieceID, NoPieceID}
	b.ToMove = White
	b.MoveNumber = 1
	b.HalfmoveClock = 0
	b.Castling = NoCastling
	b.EnPassant = EnPassant{}
	b.history = b.history[:0]
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		for file := 0; file < BoardSize; file++ {
			b.mustPlace(Pawn, colour, Sq(file, PawnRank(colour)))
		}
		for file, kind := range backRank {
			b.mustPlace(kind, colour, Sq(file, HomeRank(colour)))
		}
	}
	b.Castling = AllCastling
}

func (b *Board) mustPlace(kind PieceKind, colour Colour, sq Square) {
	if _, err := b.Place(kind, colour, sq); err != nil {
		panic(err)
	}
}

// Place adds a new piece to the board. The piece starts unmoved with its
// current square as its starting square.
func (b *Board) Place(kind PieceKind, colour Colour, sq Square) (PieceID, error) {
	if kind <= NoPiece || kind >= NumPieceKinds {
		return NoPieceID, fmt.Errorf("invalid piece kind %d", kind)
	}
	if !sq.OnBoard() {
		return NoPieceID, fmt.Errorf("square %v is off the board", sq)
	}
	if b.grid[sq.File][sq.Rank] != NoPieceID {
		return NoPieceID, fmt.Errorf("square %v is already occupied", sq)
	}
	if b.count == MaxPieces {
		return NoPieceID, fmt.Errorf("more than %d pieces", MaxPieces)
	}
	if kind == King && b.kings[colour] != NoPieceID {
		return NoPieceID, fmt.Errorf("second %s king on %v", colour, sq)
	}

	id := PieceID(b.count)
	b.count++
	b.pieces[id] = Piece{Kind: kind, Colour: colour, Square: sq, StartSquare: sq}
	b.grid[sq.File][sq.Rank] = id
	if kind == King {
		b.kings[colour] = id
	}
	return id, nil
}

// At returns the ID of the live piece on a square, or NoPieceID.
func (b *Board) At(sq Square) PieceID {
	if !sq.OnBoard() {
		return NoPieceID
	}
	return b.grid[sq.File][sq.Rank]
}

// IsEmpty returns true if no live piece stands on an on-board square.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.OnBoard() && b.grid[sq.File][sq.Rank] == NoPieceID
}

// Piece returns a copy of a piece record.
func (b *Board) Piece(id PieceID) Piece {
	b.checkID(id)
	return b.pieces[id]
}

// PieceAt returns the live piece on a square.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	id := b.At(sq)
	if id == NoPieceID {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// NumPieces returns the number of arena slots in use, captured or not.
// Every ID in [0, NumPieces) is valid.
func (b *Board) NumPieces() int {
	return b.count
}

// King returns the ID of a colour's king, or NoPieceID if it has none.
func (b *Board) King(colour Colour) PieceID {
	return b.kings[colour]
}

// KingSquare returns the square of a colour's king. A board without that
// king is a broken invariant.
func (b *Board) KingSquare(colour Colour) Square {
	id := b.kings[colour]
	if id == NoPieceID {
		panic(fmt.Sprintf("chess: no %s king on the board", colour))
	}
	return b.pieces[id].Square
}

// Relocate moves a live piece to an empty square, updating the grid.
func (b *Board) Relocate(id PieceID, to Square) {
	b.checkID(id)
	p := &b.pieces[id]
	if p.Captured {
		panic(fmt.Sprintf("chess: relocating captured piece %d", id))
	}
	if b.grid[to.File][to.Rank] != NoPieceID {
		panic(fmt.Sprintf("chess: relocating piece %d onto occupied %v", id, to))
	}
	b.grid[p.Square.File][p.Square.Rank] = NoPieceID
	b.grid[to.File][to.Rank] = id
	p.Square = to
}

// Capture tombstones a live piece and frees its square.
func (b *Board) Capture(id PieceID) {
	b.checkID(id)
	p := &b.pieces[id]
	if p.Captured {
		panic(fmt.Sprintf("chess: piece %d captured twice", id))
	}
	b.grid[p.Square.File][p.Square.Rank] = NoPieceID
	p.Captured = true
}

// Revive restores a tombstoned piece to the square it was captured on.
func (b *Board) Revive(id PieceID) {
	b.checkID(id)
	p := &b.pieces[id]
	if !p.Captured {
		panic(fmt.Sprintf("chess: reviving live piece %d", id))
	}
	if b.grid[p.Square.File][p.Square.Rank] != NoPieceID {
		panic(fmt.Sprintf("chess: reviving piece %d onto occupied %v", id, p.Square))
	}
	p.Captured = false
	b.grid[p.Square.File][p.Square.Rank] = id
}

// SetKind changes a piece's kind; used for promotion and its undo.
func (b *Board) SetKind(id PieceID, kind PieceKind) {
	b.checkID(id)
	b.pieces[id].Kind = kind
}

// SetMoved sets a piece's has-moved flag.
func (b *Board) SetMoved(id PieceID, moved bool) {
	b.checkID(id)
	b.pieces[id].HasMoved = moved
}

func (b *Board) checkID(id PieceID) {
	if id < 0 || int(id) >= b.count {
		panic(fmt.Sprintf("chess: dangling piece id %d", id))
	}
}

// Clone creates a deep copy of the board, including its undo history.
func (b *Board) Clone() *Board {
	nb := &Board{}
	*nb = *b
	nb.history = append([]Undo(nil), b.history...)
	return nb
}

// Undo records everything needed to reverse one applied move.
type Undo struct {
	Move Move

	Moved        PieceID
	MovedFrom    Square
	MovedHad     bool // HasMoved before the move
	MovedKind    PieceKind
	Captured     PieceID
	RookID       PieceID
	RookFrom     Square
	RookTo       Square
	RookHadMoved bool

	Castling      CastleRights
	EnPassant     EnPassant
	HalfmoveClock int
	MoveNumber    int
	ToMove        Colour
}

// PushUndo records an applied move on the board's history stack.
func (b *Board) PushUndo(u Undo) {
	b.history = append(b.history, u)
}

// PopUndo removes and returns the most recent undo record.
func (b *Board) PopUndo() (Undo, bool) {
	n := len(b.history)
	if n == 0 {
		return Undo{}, false
	}
	u := b.history[n-1]
	b.history = b.history[:n-1]
	return u, true
}

// Depth returns the number of undo records on the history stack.
func (b *Board) Depth() int {
	return len(b.history)
}
