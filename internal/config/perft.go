package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for perft node counting.
type PerftConfig struct {
	// Depth is the number of plies to enumerate; 0 disables perft.
	Depth int

	// Divide reports the node count below each root move.
	Divide bool

	// Distinct also counts distinct positions at the final depth.
	Distinct bool

	// DistinctLimit caps the signatures kept for Distinct; 0 means
	// unlimited.
	DistinctLimit int

	// Workers is the number of goroutines; 0 means one per CPU.
	Workers int
}

// NewPerftConfig creates a PerftConfig with perft disabled.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Enabled reports whether perft was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.DistinctLimit < 0 {
		return fmt.Errorf("negative distinct limit %d: %w", p.DistinctLimit, errors.ErrInvalidConfig)
	}
	if p.DistinctLimit > 0 && !p.Distinct {
		return fmt.Errorf("distinct limit without distinct counting: %w", errors.ErrInvalidConfig)
	}
	if (p.Divide || p.Distinct) && p.Depth == 0 {
		return fmt.Errorf("divide and distinct need a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
