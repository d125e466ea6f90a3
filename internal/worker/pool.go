// Package worker analyses independent positions in parallel. Each work item
// parses its own board, so no board is ever shared between goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	FEN   string
	Index int // Line number in the input, for ordering results
}

// Result is the analysis of one position.
type Result struct {
	Index   int
	FEN     string
	Move    chess.Move // Best move for the side to move, if HasMove
	HasMove bool
	Score   int // Static evaluation, positive favours White
	Nodes   int
	Ending  engine.Ending

	// MaterialOdds is set for a first-move position whose material differs
	// from the standard starting set, as in a game played at odds.
	MaterialOdds bool

	Err error
}

// ProcessFunc analyses a single work item.
type ProcessFunc func(item WorkItem) Result

// Pool runs a fixed number of workers over a stream of positions.
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// NewPool creates a pool sized by cfg. A nil cfg uses the defaults.
func NewPool(cfg *config.BatchConfig, processFunc ProcessFunc) *Pool {
	if cfg == nil {
		cfg = config.NewBatchConfig()
	}
	numWorkers, bufferSize := cfg.Workers, cfg.BufferSize
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan Result, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a position. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip any item they have not started yet.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
