// chesscore reports on a chess position: its FEN, status and legal moves,
// with optional perft node counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/processing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	err := applyFlags(cfg)
	logger := newLogger(cfg)
	if err != nil {
		logger.Error("invalid arguments", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reports on the standard start position, or the one given by -fen,\n")
	fmt.Fprintf(os.Stderr, "-chess960 or -random960, after playing -moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// newLogger creates the stderr logger at the configured verbosity.
func newLogger(cfg *config.Config) *log.Logger {
	level := log.InfoLevel
	switch cfg.Verbosity {
	case config.Quiet:
		level = log.ErrorLevel
	case config.Verbose:
		level = log.DebugLevel
	}
	return log.NewWithOptions(cfg.LogFile, log.Options{
		Prefix: "chesscore",
		Level:  level,
	})
}

// run builds the position, plays the configured moves, runs perft if
// requested and writes the report.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	start, err := startPosition(cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("start position", "variant", start.Variant().Name, "fen", start.FEN())

	g, err := processing.ReplayGame(start, cfg.Position.Moves)
	if err != nil {
		return err
	}
	if len(cfg.Position.Moves) > 0 {
		logger.Debug("moves played", "plies", g.Ply(), "fen", g.Position().FEN())
	}

	report := output.NewReport(g, cfg)
	if cfg.Perft.Enabled() {
		pr, err := runPerft(ctx, g.Position(), cfg, logger)
		if err != nil {
			return err
		}
		report.Perft = pr
	}
	return output.NewWriter(cfg.OutputFile, cfg).WriteReport(report)
}

// startPosition returns the configured starting position.
func startPosition(cfg *config.Config, logger *log.Logger) (*engine.Position, error) {
	pc := cfg.Position
	v, ok := engine.LookupVariant(pc.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q: %w", pc.Variant, errors.ErrInvalidConfig)
	}

	switch {
	case pc.FEN != "":
		return v.ParseFEN(pc.FEN)
	case pc.Chess960 != config.NoChess960:
		return engine.Chess960Start(pc.Chess960)
	case pc.Random:
		seed := pc.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		pos, n, err := engine.RandomChess960(rand.New(rand.NewPCG(seed, seed>>32)))
		if err != nil {
			return nil, err
		}
		logger.Info("random start", "position", n, "seed", seed)
		return pos, nil
	default:
		return engine.NewVariantPosition(v)
	}
}

// runPerft counts nodes with the worker pool.
func runPerft(ctx context.Context, pos *engine.Position, cfg *config.Config, logger *log.Logger) (*output.PerftReport, error) {
	pc := cfg.Perft
	n := worker.Workers(pc.Workers)
	logger.Debug("perft", "depth", pc.Depth, "workers", n)

	begin := time.Now()
	entries, err := worker.Divide(ctx, pos, pc.Depth, n)
	if err != nil {
		return nil, err
	}
	var nodes uint64
	for _, e := range entries {
		nodes += e.Nodes
	}
	elapsed := time.Since(begin)
	logger.Info("perft complete", "depth", pc.Depth, "nodes", nodes, "elapsed", elapsed.Round(time.Millisecond),
		"nps", int64(float64(nodes)/max(elapsed.Seconds(), 1e-9)))

	var distinct worker.Distinct
	if pc.Distinct {
		distinct, err = worker.DistinctPositions(ctx, pos, pc.Depth, n, pc.DistinctLimit)
		if err != nil {
			return nil, err
		}
		logger.Debug("distinct positions", "count", distinct.Positions, "transpositions", distinct.Transpositions)
		if distinct.LimitReached {
			logger.Warn("distinct limit reached, count is partial", "limit", pc.DistinctLimit)
		}
	}

	if !pc.Divide {
		entries = nil
	}
	pr := output.NewPerftReport(pos, pc.Depth, nodes, entries, distinct.Positions)
	pr.Transpositions = distinct.Transpositions
	pr.LimitReached = distinct.LimitReached
	return pr, nil
}
