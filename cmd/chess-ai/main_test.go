package main

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

func init() {
	color.NoColor = true
}

// newSession builds a session on fen with human input taken from input.
func newSession(t *testing.T, fen string, human chess.Colour, hasHuman bool, input string, maxPlies int) (*session, *bytes.Buffer) {
	t.Helper()
	var out, log bytes.Buffer
	cfg, err := config.NewConfigBuilder().
		WithVerbosity(1).
		WithLog(&log).
		WithOutput(&out).
		WithSearchDepth(2).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	searcher := search.NewSearcher(cfg)
	game := engine.NewGame(cfg, searcher)
	if err := game.LoadFEN(fen); err != nil {
		t.Fatalf("LoadFEN(%q) error: %v", fen, err)
	}
	return &session{
		cfg:      cfg,
		game:     game,
		searcher: searcher,
		human:    human,
		hasHuman: hasHuman,
		in:       bufio.NewScanner(strings.NewReader(input)),
		out:      &out,
		maxPlies: maxPlies,
	}, &out
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		text       string
		wantColour chess.Colour
		wantOK     bool
		wantErr    bool
	}{
		{"", chess.White, false, false},
		{"none", chess.White, false, false},
		{"white", chess.White, true, false},
		{"W", chess.White, true, false},
		{"Black", chess.Black, true, false},
		{"b", chess.Black, true, false},
		{"red", chess.White, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			colour, ok, err := parseSide(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSide(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, chesserrors.ErrInvalidConfig) {
					t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
				}
				return
			}
			if colour != tt.wantColour || ok != tt.wantOK {
				t.Errorf("parseSide(%q) = (%v, %v), want (%v, %v)", tt.text, colour, ok, tt.wantColour, tt.wantOK)
			}
		})
	}
}

func TestLoadStartPosition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "positions.fen")
	second := "8/8/8/8/8/8/8/K6k w - - 0 1"
	if err := os.WriteFile(path, []byte(engine.InitialFEN+"\n"+second+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("no file gives the initial position", func(t *testing.T) {
		got, err := loadStartPosition("", 7)
		if err != nil || got != engine.InitialFEN {
			t.Errorf("loadStartPosition() = %q, %v", got, err)
		}
	})

	t.Run("second line", func(t *testing.T) {
		got, err := loadStartPosition(path, 2)
		if err != nil {
			t.Fatalf("loadStartPosition() error: %v", err)
		}
		if got != second {
			t.Errorf("loadStartPosition() = %q, want %q", got, second)
		}
	})

	t.Run("past the end", func(t *testing.T) {
		_, err := loadStartPosition(path, 5)
		if !errors.Is(err, chesserrors.ErrLineNotFound) {
			t.Errorf("error = %v, want ErrLineNotFound", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadStartPosition(filepath.Join(dir, "missing"), 1); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestSession_SelfPlayMate(t *testing.T) {
	s, out := newSession(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", chess.White, false, "", 10)

	got := s.run()
	if got.Verdict != engine.WhiteWins || got.Reason != engine.Checkmate {
		t.Fatalf("run() = %v, want white wins by checkmate", got)
	}
	for _, want := range []string{"1. White plays a1a8", "white wins by checkmate"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSession_PlyLimit(t *testing.T) {
	s, out := newSession(t, engine.InitialFEN, chess.White, false, "", 2)

	if got := s.run(); got.Verdict != engine.InProgress {
		t.Errorf("run() = %v, want in progress", got)
	}
	if s.game.Board().Depth() != 2 {
		t.Errorf("plies played = %d, want 2", s.game.Board().Depth())
	}
	if !strings.Contains(out.String(), "stopped after 2 plies") {
		t.Errorf("output missing ply limit message:\n%s", out.String())
	}
}

func TestSession_HumanMoves(t *testing.T) {
	input := strings.Join([]string{
		"z9 e4", // bad square
		"e2 e5", // illegal
		"moves", // list
		"E2 E4", // played
		"undo",  // takes back both plies
		"d2d4",  // played
		"quit",
	}, "\n")
	s, out := newSession(t, engine.InitialFEN, chess.White, true, input, 0)

	s.run()

	text := out.String()
	for _, want := range []string{
		"invalid move text",
		"e2e5: illegal move",
		"20 moves:",
		"1. Black plays",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	// d2d4 and the engine's reply remain.
	if s.game.Board().Depth() != 2 {
		t.Errorf("plies played = %d, want 2", s.game.Board().Depth())
	}
	if p, ok := s.game.Board().PieceAt(chess.Sq(3, 3)); !ok || p.Kind != chess.Pawn {
		t.Error("d4 should hold a pawn")
	}
}

func TestSession_HumanPromotion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  chess.PieceKind
	}{
		{"with the move", "a7a8n", chess.Knight},
		{"as three fields", "a7 a8 b", chess.Bishop},
		{"asked for", "a7 a8\nx\nr", chess.Rook},
		{"input ends", "a7 a8", chess.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSession(t, "7k/P7/8/8/8/8/8/K7 w - - 0 1", chess.White, true, tt.input, 1)
			s.run()

			p, ok := s.game.Board().PieceAt(chess.Sq(0, 7))
			if !ok || p.Kind != tt.want {
				t.Errorf("a8 = %v, want %v", p.Kind, tt.want)
			}
			if _, waiting := s.game.PawnAwaitingPromotion(); waiting {
				t.Error("promotion should be complete")
			}
		})
	}
}

func TestSession_AdjustDepth(t *testing.T) {
	s, out := newSession(t, engine.InitialFEN, chess.White, true, "harder\nharder\nharder\nharder\neasier\nquit", 0)
	s.run()

	if got := s.searcher.Depth(); got != config.MaxSearchDepth-1 {
		t.Errorf("Depth() = %d, want %d", got, config.MaxSearchDepth-1)
	}
	if !strings.Contains(out.String(), "search depth stays at 5") {
		t.Errorf("output should report the depth limit:\n%s", out.String())
	}
}

func TestWriteResults(t *testing.T) {
	results := []worker.Result{
		{Index: 0, Move: chess.Move{From: chess.Sq(0, 0), To: chess.Sq(0, 7)}, HasMove: true, Score: 500, Nodes: 42},
		{Index: 2, Ending: engine.Stalemate, Score: 900},
		{Index: 3, Err: chesserrors.ErrInvalidFEN},
		{Index: 4, Move: chess.Move{From: chess.Sq(4, 0), To: chess.Sq(4, 1)}, HasMove: true, Ending: engine.FiftyMoveRule},
		{Index: 5, Ending: engine.InsufficientMaterial, HasMove: true, Move: chess.Move{From: chess.Sq(4, 0), To: chess.Sq(3, 0)}},
		{Index: 6, Move: chess.Move{From: chess.Sq(6, 0), To: chess.Sq(5, 2)}, HasMove: true, Score: 900, Nodes: 7, MaterialOdds: true},
	}

	var buf bytes.Buffer
	writeResults(&buf, results)

	want := "1\ta1a8\t500\t42\n" +
		"3\tstalemate\t900\t0\n" +
		"4\terror\tinvalid FEN string\n" +
		"5\tfifty-move rule\t0\t0\n" +
		"6\tinsufficient material\t0\t0\n" +
		"7\tg1f3\t900\t7\todds\n"
	if got := buf.String(); got != want {
		t.Errorf("writeResults() =\n%q\nwant\n%q", got, want)
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.fen")
	content := "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1\n7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var out, log bytes.Buffer
	cfg, err := config.NewConfigBuilder().
		WithVerbosity(1).
		WithLog(&log).
		WithOutput(&out).
		WithSearchDepth(2).
		WithWorkers(2).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if err := runBatch(cfg, path); err != nil {
		t.Fatalf("runBatch() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "1\ta1a8\t") {
		t.Errorf("line 1 = %q, want the mating move", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2\tstalemate\t") {
		t.Errorf("line 2 = %q, want stalemate", lines[1])
	}
	if !strings.Contains(log.String(), "analysed 2 positions with 2 workers") {
		t.Errorf("log missing summary: %q", log.String())
	}

	if err := runBatch(cfg, filepath.Join(dir, "missing")); err == nil {
		t.Error("runBatch() should fail for a missing file")
	}
}
