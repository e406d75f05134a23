// Package output provides context-aware primary output for consolemenu.
// Stdout carries the selection result so it can be captured by scripts;
// the menu itself and diagnostics go to stderr.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Printer writes primary output (the selection) to stdout.
type Printer struct {
	w        io.Writer
	terminal bool
}

// New creates a new Printer writing to the given writer.
// Output is decorated for humans when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, terminal: isTerminal(w)}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Selection prints the chosen label. On a terminal it is framed as
// "Your selection: <label>"; otherwise only the label is printed.
func (p *Printer) Selection(label string) {
	if p.terminal {
		fmt.Fprintf(p.w, "\nYour selection: %s\n\n", label)
		return
	}
	fmt.Fprintln(p.w, label)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
