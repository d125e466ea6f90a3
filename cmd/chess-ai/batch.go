package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// runBatch analyses every FEN record in path and writes one line per
// record to cfg.OutputFile.
func runBatch(cfg *config.Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	results, err := worker.AnalyzeLines(cfg, file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	writeResults(cfg.OutputFile, results)

	cfg.Logf(1, "analysed %d positions with %d workers", len(results), cfg.Batch.Workers)
	return nil
}

// writeResults prints tab-separated results: line, ending or best move,
// static score and nodes searched, followed by "odds" for a starting
// position with non-standard material.
func writeResults(w io.Writer, results []worker.Result) {
	for _, r := range results {
		line := r.Index + 1
		odds := ""
		if r.MaterialOdds {
			odds = "\todds"
		}
		switch {
		case r.Err != nil:
			errorColor.Fprintf(w, "%d\terror\t%v\n", line, r.Err)
		case r.Ending != engine.NotEnded:
			resultColor.Fprintf(w, "%d\t%s\t%d\t%d%s\n", line, r.Ending, r.Score, r.Nodes, odds)
		case r.HasMove:
			fmt.Fprintf(w, "%d\t%v\t%d\t%d%s\n", line, r.Move, r.Score, r.Nodes, odds)
		default:
			fmt.Fprintf(w, "%d\t-\t%d\t%d%s\n", line, r.Score, r.Nodes, odds)
		}
	}
}
