package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/config"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// runWith runs the command on cfg and returns stdout and log output.
func runWith(t *testing.T, cfg *config.Config) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cfg.OutputFile = &out
	cfg.LogFile = &logs
	err := run(context.Background(), cfg, newLogger(cfg))
	return out.String(), logs.String(), err
}

func TestRunStartPosition(t *testing.T) {
	out, _, err := runWith(t, config.NewConfig())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "FEN:       rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertContains(t, out, "Legal (20):")
	testutil.AssertNotContains(t, out, "Game:")
}

func TestRunMovesAndPerft(t *testing.T) {
	cfg, err := config.NewConfigBuilder().
		WithMoves("e4", "e7e5", "Nf3").
		WithPerft(2, true).
		WithWorkers(2).
		WithVerbosity(config.Verbose).
		Build()
	testutil.AssertNoError(t, err)

	out, logs, err := runWith(t, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "Game:      1. e4 e5 2. Nf3 *")
	testutil.AssertContains(t, out, "Perft 2:")
	testutil.AssertContains(t, logs, "perft complete")
	testutil.AssertContains(t, logs, "moves played")
}

func TestRunJSON(t *testing.T) {
	cfg, err := config.NewConfigBuilder().
		WithChess960(0).
		WithPerft(1, false).
		WithDistinct(true).
		WithJSONOutput(true).
		WithVerbosity(config.Quiet).
		Build()
	testutil.AssertNoError(t, err)

	out, logs, err := runWith(t, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, logs, "")

	var decoded struct {
		Variant    string `json:"variant"`
		FEN        string `json:"fen"`
		InitialFEN string `json:"initialFEN"`
		Perft      struct {
			Nodes    uint64            `json:"nodes"`
			Distinct int               `json:"distinct"`
			Divide   []json.RawMessage `json:"divide"`
		} `json:"perft"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	testutil.AssertEqual(t, decoded.Variant, "chess960")
	testutil.AssertEqual(t, decoded.FEN, "bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w HFhf - 0 1")
	testutil.AssertEqual(t, decoded.InitialFEN, decoded.FEN)
	testutil.AssertEqual(t, decoded.Perft.Nodes, uint64(20))
	testutil.AssertEqual(t, decoded.Perft.Distinct, 20)
	testutil.AssertEqual(t, len(decoded.Perft.Divide), 0)
}

func TestRunRandomChess960Seeded(t *testing.T) {
	build := func() *config.Config {
		cfg, err := config.NewConfigBuilder().WithRandomChess960(99).ShowBoard(false).ShowMoves(false).Build()
		testutil.AssertNoError(t, err)
		return cfg
	}
	first, logs, err := runWith(t, build())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, logs, "random start")

	second, _, err := runWith(t, build())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, first, second)
}

func TestRunShatranj(t *testing.T) {
	cfg, err := config.NewConfigBuilder().WithVariant("shatranj").WithNotation(config.UCI).Build()
	testutil.AssertNoError(t, err)

	out, _, err := runWith(t, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "Variant:   shatranj")
	testutil.AssertContains(t, out, "Legal (16):")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() *config.Config
		want error
	}{
		{
			name: "bad FEN",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Position.FEN = "not a fen"
				return cfg
			},
			want: chesserrors.ErrInvalidFEN,
		},
		{
			name: "illegal move",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Position.Moves = []string{"e4", "e4"}
				return cfg
			},
			want: chesserrors.ErrIllegalMove,
		},
		{
			name: "move after mate",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Position.Moves = []string{"f3", "e5", "g4", "Qh4#", "a3"}
				return cfg
			},
			want: chesserrors.ErrGameOver,
		},
		{
			name: "unknown variant",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Position.Variant = "atomic"
				return cfg
			},
			want: chesserrors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runWith(t, tt.cfg())
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestRunCancelledPerft(t *testing.T) {
	cfg, err := config.NewConfigBuilder().WithPerft(3, false).Build()
	testutil.AssertNoError(t, err)
	cfg.OutputFile = &bytes.Buffer{}
	cfg.LogFile = &bytes.Buffer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = run(ctx, cfg, newLogger(cfg))
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestRunDistinctLimit(t *testing.T) {
	cfg, err := config.NewConfigBuilder().
		WithPerft(3, false).
		WithDistinctLimit(50).
		ShowBoard(false).
		ShowMoves(false).
		Build()
	testutil.AssertNoError(t, err)

	out, logs, err := runWith(t, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "Perft 3:   8902\n")
	testutil.AssertContains(t, out, "Distinct:  50 (limit reached)\n")
	testutil.AssertContains(t, logs, "distinct limit reached")
}
