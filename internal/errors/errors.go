// Package errors provides sentinel errors and error types for chesscore.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name that is malformed or off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that is not in the legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates move text that matches more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrGameOver indicates an operation that needs a game still in progress.
	ErrGameOver = errors.New("game is over")

	// ErrNoSuchMove indicates a ply or variation that is not in the game tree.
	ErrNoSuchMove = errors.New("no such move in game")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with the move that caused them: the squares
// involved and, when the move came from text, the text itself.
type MoveError struct {
	Err       error  // The underlying error
	From      string // Source square name (if known)
	To        string // Destination square name (if known)
	Promotion byte   // Requested promotion letter (0 if none)
	MoveText  string // The move text that caused the error (if applicable)
	Ply       int    // Ply number of the position the move was tried in (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	if e.From != "" || e.To != "" {
		sq := e.From + "-" + e.To
		if e.Promotion != 0 {
			sq += "=" + string(e.Promotion)
		}
		parts = append(parts, sq)
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a FEN field that failed to parse.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The full input (if known)
	Field    string // Which field failed, e.g. "castling"
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with the failing field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field+" field")
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.Input))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
