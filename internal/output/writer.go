package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as labelled text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteReport writes a report as text.
func (tw *TextWriter) WriteReport(r *Report) error {
	OutputReport(r, tw.cfg, tw.w)
	return nil
}

// JSONWriter writes each report as one indented JSON document.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// WriteReport encodes a report.
func (jw *JSONWriter) WriteReport(r *Report) error {
	return jw.enc.Encode(r)
}
