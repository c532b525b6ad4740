// Package output renders position reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// SetIndent sets the prefix written at the start of wrapped lines.
func (o *OutputWriter) SetIndent(indent string) {
	o.indent = indent
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputReport writes r as text in the configured notation.
func OutputReport(r *Report, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, 80)

	if cfg.Output.ShowBoard && r.board != nil {
		writeBoard(w, r.board, r.catalog)
		fmt.Fprintln(w)
	}

	field(ow, "Variant", r.Variant)
	if r.InitialFEN != "" {
		field(ow, "Start", r.InitialFEN)
	}
	field(ow, "FEN", r.FEN)
	field(ow, "To move", r.SideToMove)

	status := r.Status
	if r.Check && r.Status == "active" {
		status += " (check)"
	}
	field(ow, "Status", status)
	if r.Result != "*" {
		field(ow, "Result", fmt.Sprintf("%s (%s)", r.Result, r.Termination))
	}
	field(ow, "Material", r.Material.White+" v "+r.Material.Black)
	if r.Repetitions > 1 {
		field(ow, "Repeated", fmt.Sprintf("%d times", r.Repetitions))
	}

	if r.MoveText != "" {
		words(ow, "Game", strings.Fields(r.MoveText))
	}
	if a := r.Analysis; a != nil {
		field(ow, "Summary", fmt.Sprintf("%d plies, %d captures, %d checks, %d castles, %d promotions",
			a.Plies, a.Captures, a.Checks, a.Castles, a.Promotions))
	}

	if r.LegalMoves != nil {
		list := make([]string, len(r.LegalMoves))
		for i, m := range r.LegalMoves {
			list[i] = moveName(m, cfg.Output.Notation)
		}
		words(ow, fmt.Sprintf("Legal (%d)", len(list)), list)
	}

	if r.Perft != nil {
		outputPerft(ow, r.Perft, cfg.Output.Notation)
	}
}

func field(ow *OutputWriter, name, value string) {
	ow.WriteNoSpace(fmt.Sprintf("%-10s %s", name+":", value))
	ow.NewLine()
}

// words writes a labelled list wrapped under the label column.
func words(ow *OutputWriter, name string, list []string) {
	ow.SetIndent(strings.Repeat(" ", 11))
	ow.WriteNoSpace(fmt.Sprintf("%-10s", name+":"))
	for _, s := range list {
		ow.Write(s)
	}
	ow.NewLine()
	ow.SetIndent("")
}

func outputPerft(ow *OutputWriter, pr *PerftReport, n config.MoveNotation) {
	for _, d := range pr.Divide {
		name := d.Move
		switch n {
		case config.SAN:
			name = d.SAN
		case config.Both:
			name = d.SAN + " " + d.Move
		}
		ow.WriteNoSpace(fmt.Sprintf("%s: %d", name, d.Nodes))
		ow.NewLine()
	}
	field(ow, fmt.Sprintf("Perft %d", pr.Depth), fmt.Sprint(pr.Nodes))
	if pr.Distinct > 0 {
		distinct := fmt.Sprint(pr.Distinct)
		if pr.LimitReached {
			distinct += " (limit reached)"
		}
		field(ow, "Distinct", distinct)
	}
}

// moveName formats a move in the chosen notation.
func moveName(m JSONMove, n config.MoveNotation) string {
	switch n {
	case config.UCI:
		return m.UCI
	case config.Both:
		return m.SAN + "(" + m.UCI + ")"
	default:
		return m.SAN
	}
}

// writeBoard draws the board from White's side with rank and file labels.
func writeBoard(w io.Writer, b *chess.Board, cat *chess.Catalog) {
	g := b.Geometry()
	for rank := g.Height - 1; rank >= 0; rank-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%2d ", rank+1)
		for file := 0; file < g.Width; file++ {
			p := b.Get(g.Index(file, rank))
			c := byte('.')
			if !p.IsEmpty() {
				c = cat.Letter(p)
			}
			sb.WriteByte(' ')
			sb.WriteByte(c)
		}
		fmt.Fprintln(w, sb.String())
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for file := 0; file < g.Width; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(chess.FileLetter(file))
	}
	fmt.Fprintln(w, sb.String())
}
