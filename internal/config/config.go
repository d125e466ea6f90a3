// Package config provides configuration for the chess engine: logging,
// search difficulty and batch analysis settings.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all engine configuration. It is passed explicitly to the
// components that need it; there is no global instance.
type Config struct {
	// Verbosity controls logging: 0=nothing, 1=game events, 2=search statistics.
	Verbosity int

	// LogFile receives all log output.
	LogFile io.Writer

	// OutputFile receives command output (moves, FEN records).
	OutputFile io.Writer

	Search *SearchConfig
	Batch  *BatchConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LogFile:    os.Stderr,
		OutputFile: os.Stdout,
		Search:     NewSearchConfig(),
		Batch:      NewBatchConfig(),
	}
}

// Validate checks every sub-configuration. A nil sub-configuration stands
// for its defaults.
func (c *Config) Validate() error {
	if c.Search != nil {
		if err := c.Search.Validate(); err != nil {
			return err
		}
	}
	if c.Batch != nil {
		return c.Batch.Validate()
	}
	return nil
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
