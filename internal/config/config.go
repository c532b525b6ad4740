// Package config provides configuration for the chesscore command.
package config

import (
	"io"
	"os"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // the report
	Verbose = 2 // report plus progress logging
)

// Config holds all program configuration.
type Config struct {
	// Position selects the position to report on.
	Position PositionConfig

	// Perft controls move-path enumeration.
	Perft PerftConfig

	// Output controls how the report is written.
	Output OutputConfig

	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Position:   *NewPositionConfig(),
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the report goes to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Position.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
