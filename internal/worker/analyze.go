package worker

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Analyzer returns a ProcessFunc that classifies each position and searches
// it with cfg's search settings. Searches run silently; results are logged
// by whoever collects them.
func Analyzer(cfg *config.Config) ProcessFunc {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	quiet := *cfg
	quiet.Verbosity = 0

	return func(item WorkItem) Result {
		r := Result{Index: item.Index, FEN: item.FEN}

		board, err := engine.NewBoardFromFEN(item.FEN)
		if err != nil {
			r.Err = fmt.Errorf("line %d: %w", item.Index+1, err)
			return r
		}

		s := search.NewSearcher(&quiet)
		colour := board.ToMove
		r.Ending = engine.Classify(board, colour)
		r.MaterialOdds = board.MoveNumber == 1 && !engine.IsStandardMaterial(board)
		r.Score = s.Advantage(board)
		r.Move, r.HasMove = s.ChooseMove(board, colour)
		r.Nodes = s.Stats().Nodes
		return r
	}
}

// AnalyzeLines analyses every non-blank line of r as a FEN record and
// returns the results in input order. Malformed records are reported in
// their Result rather than failing the batch.
func AnalyzeLines(cfg *config.Config, r io.Reader) ([]Result, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	var items []WorkItem
	scanner := bufio.NewScanner(r)
	for i := 0; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, WorkItem{FEN: line, Index: i})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	pool := NewPool(cfg.Batch, Analyzer(cfg))
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(items))
	for res := range pool.Results() {
		if res.Err != nil {
			cfg.Logf(1, "%v", res.Err)
		} else {
			cfg.Logf(2, "line %d: %v score %d nodes %d", res.Index+1, res.Move, res.Score, res.Nodes)
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, nil
}
