// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

var (
	// Starting position
	fenFile = flag.String("f", "", "File of FEN records to start from (default: initial position)")
	fenLine = flag.Int("line", 1, "Line of the FEN file to start from (1-indexed)")

	// Players
	humanSide = flag.String("human", "", "Side played from standard input: white or black (default: engine plays both)")
	maxPlies  = flag.Int("maxplies", 200, "Stop after N plies (0 = no limit)")

	// Search
	depth      = flag.Int("depth", config.DefaultSearchDepth, "Search depth in plies (1-5)")
	randomMove = flag.Bool("random", false, "Play random legal moves instead of searching")
	seed       = flag.Int64("seed", 1, "Seed for -random")

	// Batch analysis
	batchFile = flag.String("batch", "", "Analyse every FEN record in this file and exit")
	workers   = flag.Int("workers", 0, "Number of worker threads for -batch (0 = auto-detect based on CPU cores)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 search statistics")
	noColor    = flag.Bool("nocolor", false, "Disable coloured output")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity

	cfg.Search.Depth = *depth
	cfg.Search.Random = *randomMove
	cfg.Search.Seed = *seed

	cfg.Batch.Workers = *workers
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = runtime.NumCPU()
	}
	cfg.Batch.BufferSize = cfg.Batch.Workers * 2
}

// parseSide parses the -human flag. An empty value means no human player.
func parseSide(text string) (colour chess.Colour, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "none":
		return chess.White, false, nil
	case "w", "white":
		return chess.White, true, nil
	case "b", "black":
		return chess.Black, true, nil
	}
	return chess.White, false, fmt.Errorf("-human %q: want white or black: %w", text, errors.ErrInvalidConfig)
}
