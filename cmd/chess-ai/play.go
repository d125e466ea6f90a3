package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

var (
	checkColor  = color.New(color.FgYellow, color.Bold)
	resultColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
)

// session plays one game. The engine moves for both sides unless hasHuman
// is set, in which case human's moves are read from in.
type session struct {
	cfg      *config.Config
	game     *engine.Game
	searcher *search.Searcher
	human    chess.Colour
	hasHuman bool
	in       *bufio.Scanner
	out      io.Writer
	maxPlies int // 0 = no limit
}

// run plays until the game ends, the ply limit is reached or the human's
// input runs out, and returns the outcome at that point.
func (s *session) run() engine.Outcome {
	for ply := 0; s.maxPlies == 0 || ply < s.maxPlies; ply++ {
		if out := s.game.Outcome(); out.Verdict != engine.InProgress {
			resultColor.Fprintf(s.out, "%s\n", out)
			return out
		}

		colour := s.game.Board().ToMove
		var ok bool
		if s.hasHuman && colour == s.human {
			ok = s.humanTurn(colour)
		} else {
			ok = s.engineTurn(colour)
		}
		if !ok {
			return s.game.Outcome()
		}
		s.reportCheck()
	}

	out := s.game.Outcome()
	if out.Verdict == engine.InProgress {
		fmt.Fprintf(s.out, "stopped after %d plies\n", s.maxPlies)
	} else {
		resultColor.Fprintf(s.out, "%s\n", out)
	}
	return out
}

func (s *session) engineTurn(colour chess.Colour) bool {
	move, ok := s.game.ChooseMove(colour)
	if !ok {
		return false
	}
	number := s.game.Board().MoveNumber
	if !s.game.Play(move) {
		// The chooser only returns legal moves.
		panic(fmt.Sprintf("chess-ai: engine chose illegal move %v", move))
	}
	fmt.Fprintf(s.out, "%d. %s plays %v\n", number, colour, move)
	return true
}

// humanTurn reads commands until a move is played. It returns false when
// the input ends or the human quits.
func (s *session) humanTurn(colour chess.Colour) bool {
	for {
		fmt.Fprintf(s.out, "%s> ", colour)
		if !s.in.Scan() {
			return false
		}
		line := strings.TrimSpace(s.in.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit":
			return false
		case "moves":
			s.listMoves(colour)
			continue
		case "fen":
			fmt.Fprintln(s.out, s.game.FEN())
			continue
		case "undo":
			s.undo()
			continue
		case "harder", "easier":
			s.adjustDepth(line)
			continue
		}

		if s.playHumanMove(colour, line) {
			return true
		}
	}
}

// playHumanMove parses and plays "e2 e4", "e2e4" or "e7e8q". It reports
// why a move was refused and returns false.
func (s *session) playHumanMove(colour chess.Colour, line string) bool {
	var (
		from, to  chess.Square
		promotion chess.PieceKind
		err       error
	)
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		from, to, promotion, err = engine.ParseLongAlgebraic(fields[0])
	case 2, 3:
		from, to, err = engine.ParseMoveText(fields[0], fields[1])
		if err == nil && len(fields) == 3 {
			promotion, err = engine.ParsePromotion(fields[2])
		}
	default:
		err = fmt.Errorf("%q: enter a move such as e2 e4", line)
	}
	if err != nil {
		errorColor.Fprintf(s.out, "%v\n", err)
		return false
	}

	if !s.game.IsValidMove(colour, from, to, false) {
		errorColor.Fprintf(s.out, "%v\n", errors.Wrapf(errors.ErrIllegalMove, "%v%v", from, to))
		return false
	}
	s.game.UpdateStateAfterMove(from, to)

	if _, waiting := s.game.PawnAwaitingPromotion(); waiting {
		s.promote(promotion)
	}
	return true
}

// promote finishes a pending promotion, asking for the piece if none was
// given with the move.
func (s *session) promote(kind chess.PieceKind) {
	for kind == chess.NoPiece {
		fmt.Fprintf(s.out, "promote to (n/b/r/q)> ")
		if !s.in.Scan() {
			kind = chess.Queen
			break
		}
		k, err := engine.ParsePromotion(s.in.Text())
		if err != nil {
			errorColor.Fprintf(s.out, "%v\n", err)
			continue
		}
		kind = k
	}
	s.game.Promote(kind)
}

func (s *session) listMoves(colour chess.Colour) {
	moves := s.game.LegalMovesFor(colour)
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(s.out, "%d moves: %s\n", len(moves), strings.Join(names, " "))
}

// undo takes back the engine's reply and the human's move before it.
func (s *session) undo() {
	if s.game.Board().Depth() < 2 {
		errorColor.Fprintf(s.out, "nothing to undo\n")
		return
	}
	s.game.Undo()
	s.game.Undo()
	fmt.Fprintln(s.out, s.game.FEN())
}

func (s *session) adjustDepth(command string) {
	delta := 1
	if strings.EqualFold(command, "easier") {
		delta = -1
	}
	if !s.searcher.AdjustDepth(delta) {
		errorColor.Fprintf(s.out, "search depth stays at %d\n", s.searcher.Depth())
		return
	}
	fmt.Fprintf(s.out, "search depth %d\n", s.searcher.Depth())
}

func (s *session) reportCheck() {
	colour := s.game.Board().ToMove
	if s.game.Outcome().Verdict == engine.InProgress && s.game.IsKingInCheck(colour) {
		checkColor.Fprintf(s.out, "%s is in check\n", colour)
	}
}
