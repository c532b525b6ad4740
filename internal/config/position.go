package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// NoChess960 marks that no numbered Chess960 start was requested.
const NoChess960 = -1

// PositionConfig describes the position to start from.
type PositionConfig struct {
	// Variant is a name accepted by engine.LookupVariant.
	Variant string

	// FEN overrides the variant's start position when non-empty.
	FEN string

	// Chess960 selects a numbered Chess960 start (0-959), or NoChess960.
	Chess960 int

	// Random selects a random Chess960 start.
	Random bool

	// Seed seeds the random start; 0 picks one from the clock.
	Seed uint64

	// Moves are played from the start position, in SAN or UCI notation.
	Moves []string
}

// NewPositionConfig creates a PositionConfig for the standard start position.
func NewPositionConfig() *PositionConfig {
	return &PositionConfig{
		Variant:  "standard",
		Chess960: NoChess960,
	}
}

// Validate checks that the position settings name one starting point.
func (p *PositionConfig) Validate() error {
	v, ok := engine.LookupVariant(p.Variant)
	if !ok {
		return fmt.Errorf("unknown variant %q: %w", p.Variant, errors.ErrInvalidConfig)
	}

	numbered := p.Chess960 != NoChess960
	if numbered && (p.Chess960 < 0 || p.Chess960 >= engine.Chess960Positions) {
		return fmt.Errorf("chess960 position %d outside 0-%d: %w",
			p.Chess960, engine.Chess960Positions-1, errors.ErrInvalidConfig)
	}
	if (numbered || p.Random) && v != engine.Chess960 {
		return fmt.Errorf("numbered or random start needs variant chess960, not %q: %w",
			p.Variant, errors.ErrInvalidConfig)
	}

	starts := 0
	for _, set := range []bool{p.FEN != "", numbered, p.Random} {
		if set {
			starts++
		}
	}
	if starts > 1 {
		return fmt.Errorf("choose only one of FEN, numbered start and random start: %w", errors.ErrInvalidConfig)
	}
	return nil
}
