package syntax

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Fprint writes an indented textual representation of x to w.
func Fprint(w io.Writer, x Expr) {
	FprintIndent(w, x, 2)
}

// FprintIndent is like Fprint but indents each level by width spaces.
func FprintIndent(w io.Writer, x Expr, width int) {
	if width < 0 {
		width = 0
	}
	p := &printer{w: w, width: width}
	p.print(x)
}

type printer struct {
	w      io.Writer
	width  int
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat(" ", p.indent*p.width), fmt.Sprintf(format, args...))
}

func (p *printer) print(x Expr) {
	if x == nil {
		return
	}

	switch n := x.(type) {
	case *Constant:
		p.printf("Const[%s]\n", formatFloat(n.Value))

	case *Bool:
		p.printf("Bool[%t]\n", n.Value)

	case *String:
		p.printf("String['%s']\n", n.Value)

	case *Nil:
		p.printf("NIL[]\n")

	case *UnaryOp:
		p.printf("Unary[\n")
		p.indent++
		p.printf("%s\n", n.Op)
		p.print(n.X)
		p.indent--
		p.printf("]\n")

	case *BinaryOp:
		p.printf("Binary[\n")
		p.indent++
		p.print(n.X)
		p.printf("%s\n", n.Op)
		p.print(n.Y)
		p.indent--
		p.printf("]\n")

	default:
		p.printf("%T\n", n)
	}
}

// ExprString returns a fully parenthesized single-line form of x,
// e.g. "((1 + 2) - (3 + 5))".
func ExprString(x Expr) string {
	switch n := x.(type) {
	case nil:
		return "<nil>"
	case *Constant:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *Bool:
		return strconv.FormatBool(n.Value)
	case *String:
		return strconv.Quote(n.Value)
	case *Nil:
		return "nil"
	case *UnaryOp:
		return "(" + n.Op.String() + ExprString(n.X) + ")"
	case *BinaryOp:
		return "(" + ExprString(n.X) + " " + n.Op.String() + " " + ExprString(n.Y) + ")"
	}
	return fmt.Sprintf("%T", x)
}

// formatFloat formats v the way constants are displayed: integral values
// keep a trailing ".0", very large or small magnitudes use exponents.
func formatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	var s string
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// FprintTokens writes toks to w as a table of position, kind and lexeme.
func FprintTokens(w io.Writer, filename string, toks []Token) {
	fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for _, tok := range toks {
		fmt.Fprintf(w, "%-20s %-12s %s\n", NewPos(filename, tok.Line), tok.Kind, strconv.Quote(tok.Lit))
	}
}
