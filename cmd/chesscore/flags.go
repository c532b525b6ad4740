// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

var (
	// Position selection
	fenString   = flag.String("fen", "", "Start from this FEN position")
	variantName = flag.String("variant", "standard", "Variant: standard, chess960, shatranj")
	chess960Num = flag.Int("chess960", config.NoChess960, "Start from Chess960 position N (0-959)")
	random960   = flag.Bool("random960", false, "Start from a random Chess960 position")
	randomSeed  = flag.Uint64("seed", 0, "Seed for -random960 (0 = from the clock)")
	moveList    = flag.String("moves", "", "Moves to play first, SAN or UCI, separated by spaces or commas")

	// Perft
	perftDepth    = flag.Int("perft", 0, "Count move paths to depth N")
	divide        = flag.Bool("divide", false, "With -perft, show the count below each root move")
	distinct      = flag.Bool("distinct", false, "With -perft, count distinct positions at depth N")
	distinctLimit = flag.Int("distinct-limit", 0, "Stop -distinct after N positions (0 = no limit); implies -distinct")
	workers       = flag.Int("workers", 0, "Worker goroutines for -perft (0 = one per CPU)")

	// Output
	jsonOutput   = flag.Bool("json", false, "Output the report as JSON")
	notationName = flag.String("notation", "san", "Legal move notation: san, uci, both")
	noBoard      = flag.Bool("noboard", false, "Don't draw the board")
	noMoves      = flag.Bool("nomoves", false, "Don't list legal moves")

	// Logging
	verbose = flag.Bool("v", false, "Verbose logging")
	quiet   = flag.Bool("q", false, "Log errors only")

	// Info
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
	return cfg.Validate()
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config) {
	cfg.Position.Variant = *variantName
	cfg.Position.FEN = *fenString
	cfg.Position.Chess960 = *chess960Num
	cfg.Position.Random = *random960
	cfg.Position.Seed = *randomSeed
	if (*chess960Num != config.NoChess960 || *random960) && *variantName == "standard" {
		cfg.Position.Variant = "chess960"
	}
	cfg.Position.Moves = splitMoves(*moveList)
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Distinct = *distinct || *distinctLimit > 0
	cfg.Perft.DistinctLimit = *distinctLimit
	cfg.Perft.Workers = *workers
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) error {
	notationMap := map[string]config.MoveNotation{
		"san":  config.SAN,
		"uci":  config.UCI,
		"both": config.Both,
	}

	n, ok := notationMap[strings.ToLower(*notationName)]
	if !ok {
		return fmt.Errorf("unknown notation %q: %w", *notationName, errors.ErrInvalidConfig)
	}
	cfg.Output.Notation = n
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowMoves = !*noMoves
	return nil
}

// splitMoves splits a move list on spaces and commas, dropping move
// numbers such as "1." and "12...".
func splitMoves(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	moves := make([]string, 0, len(fields))
	for _, f := range fields {
		if i := strings.LastIndexByte(f, '.'); i >= 0 {
			f = f[i+1:]
		}
		if f != "" {
			moves = append(moves, f)
		}
	}
	return moves
}
