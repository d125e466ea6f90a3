package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space separated fields in a FEN record.
const fenFields = 6

// ParseFEN parses a FEN record into a LumpedState. All six fields are
// required. Any malformation returns an error wrapping errors.ErrInvalidFEN.
// ParseFEN checks syntax only; Board.LoadState checks that the position is
// playable.
func ParseFEN(fen string) (chess.LumpedState, error) {
	var s chess.LumpedState

	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return s, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "record",
			Expected: fmt.Sprintf("%d fields", fenFields),
			Got:      fen,
		}
	}

	placements, err := parsePiecePositions(parts[0])
	if err != nil {
		return s, err
	}
	s.Placements = placements

	if s.ToMove, err = parseSideToMove(parts[1]); err != nil {
		return s, err
	}
	if s.Castling, err = parseCastlingRights(parts[2]); err != nil {
		return s, err
	}
	if s.EnPassant, err = parseEnPassant(parts[3]); err != nil {
		return s, err
	}
	if s.HalfmoveClock, err = parseCounter("halfmove clock", parts[4], 0); err != nil {
		return s, err
	}
	if s.MoveNumber, err = parseCounter("fullmove number", parts[5], 1); err != nil {
		return s, err
	}
	return s, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) ([]chess.Placement, error) {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "piece placement",
			Expected: "8 ranks",
			Got:      positions,
		}
	}

	var placements []chess.Placement
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, colour, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return nil, &errors.ParseError{
					Err:   errors.ErrInvalidFEN,
					Field: "piece placement",
					Got:   string(c),
				}
			}
			if file >= chess.BoardSize {
				file++
				break
			}
			placements = append(placements, chess.Placement{
				Kind:   kind,
				Colour: colour,
				Square: chess.Sq(file, rank),
			})
			file++
		}
		if file != chess.BoardSize {
			return nil, &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    "piece placement",
				Expected: "8 squares per rank",
				Got:      row,
			}
		}
	}
	return placements, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    "side to move",
		Expected: "w or b",
		Got:      field,
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastleRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}

	rights := chess.NoCastling
	for _, c := range field {
		var flag chess.CastleRights
		switch c {
		case 'K':
			flag = chess.WhiteKingside
		case 'Q':
			flag = chess.WhiteQueenside
		case 'k':
			flag = chess.BlackKingside
		case 'q':
			flag = chess.BlackQueenside
		}
		if flag == 0 || rights.Has(flag) {
			return chess.NoCastling, &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    "castling",
				Expected: "subset of KQkq or -",
				Got:      field,
			}
		}
		rights |= flag
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field. The target's
// rank identifies the side whose double step created it.
func parseEnPassant(field string) (chess.EnPassant, error) {
	if field == "-" {
		return chess.EnPassant{}, nil
	}

	sq, ok := chess.ParseSquare(field)
	if ok {
		switch sq.Rank {
		case 2:
			return chess.EnPassant{Valid: true, Target: sq, Colour: chess.White}, nil
		case 5:
			return chess.EnPassant{Valid: true, Target: sq, Colour: chess.Black}, nil
		}
	}
	return chess.EnPassant{}, &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    "en passant",
		Expected: "square on rank 3 or 6, or -",
		Got:      field,
	}
}

// parseCounter parses a move counter that must be at least min.
func parseCounter(name, field string, min int) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < min {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    name,
			Expected: fmt.Sprintf("integer >= %d", min),
			Got:      field,
		}
	}
	return n, nil
}

// SerializeFEN converts a state to a FEN string.
func SerializeFEN(s chess.LumpedState) string {
	var sb strings.Builder

	writePiecePositions(&sb, s.Placements)
	sb.WriteByte(' ')
	writeSideToMove(&sb, s.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, s.Castling)
	sb.WriteByte(' ')
	writeEnPassant(&sb, s.EnPassant)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", s.HalfmoveClock, s.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, placements []chess.Placement) {
	var grid [chess.BoardSize][chess.BoardSize]byte
	for _, p := range placements {
		if p.Square.OnBoard() {
			grid[p.Square.File][p.Square.Rank] = chess.ColouredLetter(p.Kind, p.Colour)
		}
	}

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			letter := grid[file][rank]
			if letter == 0 {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastleRights) {
	if rights == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	for _, r := range []struct {
		flag   chess.CastleRights
		letter byte
	}{
		{chess.WhiteKingside, 'K'},
		{chess.WhiteQueenside, 'Q'},
		{chess.BlackKingside, 'k'},
		{chess.BlackQueenside, 'q'},
	} {
		if rights.Has(r.flag) {
			sb.WriteByte(r.letter)
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, ep chess.EnPassant) {
	if ep.Valid {
		sb.WriteString(ep.Target.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	s, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	board := chess.NewBoard()
	if err := board.LoadState(s); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidPosition)
	}
	return board, nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	return SerializeFEN(board.State())
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// ReadFENLine returns the zero-based index'th line of r with surrounding
// whitespace trimmed. Blank lines count.
func ReadFENLine(r io.Reader, index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("line %d: %w", index, errors.ErrLineNotFound)
	}

	scanner := bufio.NewScanner(r)
	for i := 0; scanner.Scan(); i++ {
		if i == index {
			return strings.TrimSpace(scanner.Text()), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("line %d: %w", index, errors.ErrLineNotFound)
}

// WriteFENLine appends the FEN of s and a newline to w.
func WriteFENLine(w io.Writer, s chess.LumpedState) error {
	_, err := fmt.Fprintln(w, SerializeFEN(s))
	return err
}
