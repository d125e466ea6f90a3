package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

// MoveChooser picks a move for a colour. The board must be returned in the
// state it was passed in.
type MoveChooser interface {
	ChooseMove(board *chess.Board, colour chess.Colour) (chess.Move, bool)
}

// Verdict is the overall result of a game.
type Verdict int

const (
	InProgress Verdict = iota
	WhiteWins
	BlackWins
	Draw
)

func (v Verdict) String() string {
	switch v {
	case InProgress:
		return "in progress"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Outcome pairs a verdict with the rule that produced it.
type Outcome struct {
	Verdict Verdict
	Reason  Ending
}

func (o Outcome) String() string {
	if o.Reason == NotEnded {
		return o.Verdict.String()
	}
	return fmt.Sprintf("%s by %s", o.Verdict, o.Reason)
}

// Game is the rules façade used by presentation code. It owns one board,
// keeps the legal-move list for both colours current after every change and
// tracks a pawn waiting to be promoted.
type Game struct {
	board   *chess.Board
	cfg     *config.Config
	chooser MoveChooser

	legal [2][]chess.Move

	promoting   bool
	promotionSq chess.Square
}

// NewGame creates a game in the standard starting position. chooser may be
// nil if the game has no automated player.
func NewGame(cfg *config.Config, chooser MoveChooser) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{board: chess.NewBoard(), cfg: cfg, chooser: chooser}
	g.LoadInitialPosition()
	return g
}

// Board returns the game's board. Callers must not modify it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// LoadInitialPosition resets the game to the standard starting position.
func (g *Game) LoadInitialPosition() {
	g.board.SetupInitialPosition()
	g.promoting = false
	g.RefreshLegalMoves()
}

// LoadFromState replaces the position with s. On error the game is
// unchanged.
func (g *Game) LoadFromState(s chess.LumpedState) error {
	if err := g.board.LoadState(s); err != nil {
		return err
	}
	g.promoting = false
	g.RefreshLegalMoves()
	return nil
}

// LoadFEN replaces the position with the one described by fen.
func (g *Game) LoadFEN(fen string) error {
	s, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	return g.LoadFromState(s)
}

// IsValidMove returns true if the piece of colour on from may move to to.
// Unless forEnumeration is set, a legal move is also played through
// MovePiece.
func (g *Game) IsValidMove(colour chess.Colour, from, to chess.Square, forEnumeration bool) bool {
	if !IsLegal(g.board, colour, from, to) {
		return false
	}
	if forEnumeration {
		return true
	}
	return g.MovePiece(from, to)
}

// MovePiece plays the piece on from to to if that is legal. A pawn reaching
// the last rank stays a pawn until Promote is called. No moves are accepted
// while a promotion is pending.
func (g *Game) MovePiece(from, to chess.Square) bool {
	if g.promoting {
		return false
	}
	p, ok := g.board.PieceAt(from)
	if !ok || !IsLegal(g.board, p.Colour, from, to) {
		return false
	}
	Push(g.board, chess.Move{Kind: p.Kind, Colour: p.Colour, From: from, To: to})
	return true
}

// UpdateStateAfterMove brings derived state up to date after a move to to.
// It records a pending promotion, otherwise it refreshes the legal-move
// lists and logs check, mate and draw events.
func (g *Game) UpdateStateAfterMove(from, to chess.Square) {
	p, ok := g.board.PieceAt(to)
	if !ok {
		return
	}
	if p.Kind == chess.Pawn && to.Rank == chess.PromotionRank(p.Colour) {
		g.promoting = true
		g.promotionSq = to
		g.cfg.Logf(1, "%s pawn %v-%v awaits promotion", p.Colour, from, to)
		return
	}
	g.RefreshLegalMoves()
	g.logStatus()
}

// PawnAwaitingPromotion returns the square of a pawn waiting to promote.
func (g *Game) PawnAwaitingPromotion() (chess.Square, bool) {
	return g.promotionSq, g.promoting
}

// Promote replaces the waiting pawn with kind, which must be a knight,
// bishop, rook or queen.
func (g *Game) Promote(kind chess.PieceKind) bool {
	if !g.promoting {
		return false
	}
	switch kind {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
	default:
		return false
	}
	g.board.SetKind(g.board.At(g.promotionSq), kind)
	g.promoting = false
	g.RefreshLegalMoves()
	g.logStatus()
	return true
}

// Play applies a complete move, including its promotion piece, through the
// same path as a human move.
func (g *Game) Play(m chess.Move) bool {
	if !g.MovePiece(m.From, m.To) {
		return false
	}
	g.UpdateStateAfterMove(m.From, m.To)
	if _, waiting := g.PawnAwaitingPromotion(); waiting {
		promotion := m.Promotion
		if promotion == chess.NoPiece {
			promotion = chess.Queen
		}
		return g.Promote(promotion)
	}
	return true
}

// Undo takes back the last move played. It returns false at the start of
// the game's history.
func (g *Game) Undo() bool {
	if g.board.Depth() == 0 {
		return false
	}
	Pop(g.board)
	g.promoting = false
	g.RefreshLegalMoves()
	return true
}

// RefreshLegalMoves recomputes the legal-move lists of both colours.
func (g *Game) RefreshLegalMoves() {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		g.legal[colour] = LegalMoves(g.board, colour)
	}
}

// LegalMovesFor returns the current legal moves of colour.
func (g *Game) LegalMovesFor(colour chess.Colour) []chess.Move {
	return g.legal[colour]
}

// IsKingInCheck returns true if colour's king is attacked.
func (g *Game) IsKingInCheck(colour chess.Colour) bool {
	return IsInCheck(g.board, colour)
}

// IsCheckmate returns true if colour is in check with no legal moves.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	return g.IsKingInCheck(colour) && len(g.legal[colour]) == 0
}

// IsStalemateOrDraw returns true if colour is stalemated or the position is
// drawn by rule.
func (g *Game) IsStalemateOrDraw(colour chess.Colour) bool {
	if len(g.legal[colour]) == 0 && !g.IsKingInCheck(colour) {
		return true
	}
	return IsFiftyMoveDraw(g.board) || HasInsufficientMaterial(g.board)
}

// Outcome returns the result of the game with the side to move to play.
func (g *Game) Outcome() Outcome {
	colour := g.board.ToMove
	reason := classify(g.board, colour, len(g.legal[colour]) > 0)
	switch reason {
	case NotEnded:
		return Outcome{Verdict: InProgress}
	case Checkmate:
		if colour == chess.White {
			return Outcome{Verdict: BlackWins, Reason: reason}
		}
		return Outcome{Verdict: WhiteWins, Reason: reason}
	}
	return Outcome{Verdict: Draw, Reason: reason}
}

// ChooseMove asks the game's chooser for a move for colour. It returns false
// if there is no chooser or no legal move.
func (g *Game) ChooseMove(colour chess.Colour) (chess.Move, bool) {
	if g.chooser == nil || g.promoting {
		return chess.Move{}, false
	}
	return g.chooser.ChooseMove(g.board, colour)
}

// State returns the current position as a LumpedState.
func (g *Game) State() chess.LumpedState {
	return g.board.State()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

func (g *Game) logStatus() {
	colour := g.board.ToMove
	switch out := g.Outcome(); {
	case out.Verdict != InProgress:
		g.cfg.Logf(1, "%s", out)
	case g.IsKingInCheck(colour):
		g.cfg.Logf(1, "%s is in check", colour)
	}
}
