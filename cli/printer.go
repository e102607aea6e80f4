package cli

import (
	"fmt"
	"github.com/fatih/color"
	"golang.org/x/term"
	"io"
	"os"
)

// Printer is used to communicate with the user.
// Output goes to STDERR unless redirected.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

// Writer returns the current output of the Printer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Errorf prints a diagnostic message, highlighted in red if the output is a terminal.
func (p *Printer) Errorf(format string, args ...any) {
	c := color.New(color.FgRed)
	if !p.IsTerminal() {
		c.DisableColor()
	}
	_, _ = c.Fprintf(p.out, format, args...)
}

// IsTerminal returns true if the output of the Printer is a terminal.
func (p *Printer) IsTerminal() bool {
	f, ok := p.out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the width of the terminal the Printer writes to, or 0 if it's not a terminal.
func (p *Printer) Width() int {
	f, ok := p.out.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
