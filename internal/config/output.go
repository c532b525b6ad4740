package config

// OutputFormat selects how the report is written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable report
	JSON                     // One JSON document
)

// MoveNotation selects how legal moves are listed.
type MoveNotation int

const (
	SAN  MoveNotation = iota // Standard algebraic notation
	UCI                      // Coordinate notation (e2e4)
	Both                     // SAN with UCI alongside
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is Text or JSON.
	Format OutputFormat

	// Notation controls the legal move listing.
	Notation MoveNotation

	// ShowMoves includes the legal move list.
	ShowMoves bool

	// ShowBoard includes a diagram of the board in text output.
	ShowBoard bool

	// ShowGame includes the moves played to reach the position.
	ShowGame bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		Notation:  SAN,
		ShowMoves: true,
		ShowBoard: true,
		ShowGame:  true,
	}
}
