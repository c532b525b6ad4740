package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithVariant sets the variant name.
func (b *ConfigBuilder) WithVariant(name string) *ConfigBuilder {
	b.cfg.Position.Variant = name
	return b
}

// WithFEN sets the starting FEN.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Position.FEN = fen
	return b
}

// WithChess960 selects numbered Chess960 start n and the chess960 variant.
func (b *ConfigBuilder) WithChess960(n int) *ConfigBuilder {
	b.cfg.Position.Variant = "chess960"
	b.cfg.Position.Chess960 = n
	return b
}

// WithRandomChess960 selects a random Chess960 start drawn with seed.
func (b *ConfigBuilder) WithRandomChess960(seed uint64) *ConfigBuilder {
	b.cfg.Position.Variant = "chess960"
	b.cfg.Position.Random = true
	b.cfg.Position.Seed = seed
	return b
}

// WithMoves sets the moves to play before reporting.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Position.Moves = append(b.cfg.Position.Moves, moves...)
	return b
}

// WithPerft sets the perft depth and whether to divide by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithDistinct enables counting distinct positions at the perft depth.
func (b *ConfigBuilder) WithDistinct(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Distinct = enabled
	return b
}

// WithDistinctLimit enables distinct counting with at most n signatures.
func (b *ConfigBuilder) WithDistinctLimit(n int) *ConfigBuilder {
	b.cfg.Perft.Distinct = true
	b.cfg.Perft.DistinctLimit = n
	return b
}

// WithWorkers sets the worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithNotation sets the legal move notation.
func (b *ConfigBuilder) WithNotation(n MoveNotation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// ShowBoard controls whether text output includes a board diagram.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// ShowMoves controls whether the legal moves are listed.
func (b *ConfigBuilder) ShowMoves(show bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = show
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
