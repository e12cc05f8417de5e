package services

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kubev2v/concurrency-patterns/pkg/guard"
)

// printer serializes writes coming from several units onto one writer.
type printer struct {
	w      *guard.Guarded[io.Writer]
	result *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:      guard.New(w),
		result: color.New(color.FgGreen, color.Bold),
	}
}

// Printf writes a progress line. A write error, or a guard poisoned by an
// earlier writer, is returned to the caller.
func (p *printer) Printf(format string, args ...any) error {
	return p.w.With(func(w *io.Writer) error {
		if _, err := fmt.Fprintf(*w, format, args...); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	})
}

// Resultf prints an outcome line, highlighted when the writer is a terminal.
func (p *printer) Resultf(format string, args ...any) error {
	return p.w.With(func(w *io.Writer) error {
		if _, err := p.result.Fprintf(*w, format, args...); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		return nil
	})
}
