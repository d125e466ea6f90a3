package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// BatchConfig holds settings for analysing many positions in parallel.
type BatchConfig struct {
	Workers    int
	BufferSize int
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be at least 1: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
