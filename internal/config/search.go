package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Search depth bounds in plies.
const (
	MinSearchDepth     = 1
	MaxSearchDepth     = 5
	DefaultSearchDepth = 3
)

// SearchConfig holds settings for the automated opponent.
type SearchConfig struct {
	// Depth is the fixed search depth in plies.
	Depth int

	// Random selects a uniformly random legal move instead of searching.
	Random bool

	// Seed seeds the random mover so games can be replayed.
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth: DefaultSearchDepth,
		Seed:  1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < MinSearchDepth || s.Depth > MaxSearchDepth {
		return fmt.Errorf("search depth %d outside %d-%d: %w",
			s.Depth, MinSearchDepth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	return nil
}
