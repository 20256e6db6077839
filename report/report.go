// Package report renders match results for terminals: mismatch
// diagnostics and expected/actual diffs, in color when the output is a
// tty.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/structmatch/ir"
)

type Printer struct {
	out   io.Writer
	color bool
}

type PrinterOpt func(*Printer)

// Color forces colored output on or off; without it the printer
// colors only when writing to a terminal.
func Color(v bool) PrinterOpt {
	return func(p *Printer) { p.color = v }
}

func New(w io.Writer, opts ...PrinterOpt) *Printer {
	p := &Printer{out: w}
	if f, ok := w.(*os.File); ok {
		p.color = isatty.IsTerminal(f.Fd())
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.color {
		msg = color.GreenString("%s", msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Failure writes one diagnostic per line, as produced by aggregated
// collection mismatches.
func (p *Printer) Failure(err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		if p.color {
			line = color.RedString("%s", line)
		}
		fmt.Fprintln(p.out, line)
	}
}

// Diff renders a character diff of the wanted and matched fragments,
// deletions red, insertions green.
func (p *Printer) Diff(want, have *ir.Node) {
	haveStr := "null"
	if have != nil {
		haveStr = have.Export()
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want.Export(), haveStr, false)
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			if p.color {
				b.WriteString(color.RedString("%s", d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if p.color {
				b.WriteString(color.GreenString("%s", d.Text))
			} else {
				b.WriteString("[+" + d.Text + "+]")
			}
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	fmt.Fprintln(p.out, b.String())
}
