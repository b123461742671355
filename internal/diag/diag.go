// Package diag renders parse diagnostics for terminal output.
package diag

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/you-not-fish/lox/internal/syntax"
)

// ColorMode selects whether diagnostics are styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // style only when w is a color terminal
	ColorAlways ColorMode = "always" // always emit ANSI sequences
	ColorNever  ColorMode = "never"  // plain text
)

// ParseColorMode validates a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

var colorError = lipgloss.Color("1") // ANSI red

// Printer writes one line per syntax error:
//
//	ParseError at [file:line]: error with 'lexeme'
//
// with the locator prefix in bold red.
type Printer struct {
	w       io.Writer
	prefix  lipgloss.Style
	verbose bool
	count   int
}

// NewPrinter creates a Printer writing to w.
// In verbose mode the parser's expectation is appended to each line.
func NewPrinter(w io.Writer, mode ColorMode, verbose bool) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:       w,
		prefix:  r.NewStyle().Bold(true).Foreground(colorError),
		verbose: verbose,
	}
}

// Report writes the diagnostic for err.
func (p *Printer) Report(err *syntax.SyntaxError) {
	p.count++
	line := fmt.Sprintf("%s error with '%s'", p.prefix.Render("ParseError at ["+err.Pos.String()+"]:"), err.Tok.Lit)
	if p.verbose && err.Msg != "" {
		line += " (" + err.Msg + ")"
	}
	fmt.Fprintln(p.w, line)
}

// Handler returns p.Report as a parser error handler.
func (p *Printer) Handler() syntax.ErrorHandler {
	return p.Report
}

// Count returns the number of diagnostics written.
func (p *Printer) Count() int {
	return p.count
}
