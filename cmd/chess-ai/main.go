// chess-ai plays chess against itself or a human, and analyses files of FEN
// positions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-ai version %s\n", programVersion)
		os.Exit(0)
	}

	if *noColor {
		color.NoColor = true
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *batchFile != "" {
		if err := runBatch(cfg, *batchFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	human, hasHuman, err := parseSide(*humanSide)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	fen, err := loadStartPosition(*fenFile, *fenLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	searcher := search.NewSearcher(cfg)
	game := engine.NewGame(cfg, searcher)
	if err := game.LoadFEN(fen); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s line %d: %v\n", *fenFile, *fenLine, err)
		os.Exit(1)
	}

	s := &session{
		cfg:      cfg,
		game:     game,
		searcher: searcher,
		human:    human,
		hasHuman: hasHuman,
		in:       bufio.NewScanner(os.Stdin),
		out:      cfg.OutputFile,
		maxPlies: *maxPlies,
	}
	s.run()

	if err := engine.WriteFENLine(cfg.OutputFile, game.State()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing final position: %v\n", err)
		os.Exit(1)
	}
}

// loadStartPosition returns the FEN record on the given 1-indexed line of
// path, or the initial position when path is empty.
func loadStartPosition(path string, line int) (string, error) {
	if path == "" {
		return engine.InitialFEN, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	fen, err := engine.ReadFENLine(file, line-1)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return fen, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-ai [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess with an alpha-beta search engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands when playing with -human:\n")
	fmt.Fprintf(os.Stderr, "  e2 e4, e2e4, e7e8q  Play a move\n")
	fmt.Fprintf(os.Stderr, "  moves               List legal moves\n")
	fmt.Fprintf(os.Stderr, "  undo                Take back your last move\n")
	fmt.Fprintf(os.Stderr, "  fen                 Print the current position\n")
	fmt.Fprintf(os.Stderr, "  harder, easier      Change the search depth\n")
	fmt.Fprintf(os.Stderr, "  quit                Stop playing\n")
}
