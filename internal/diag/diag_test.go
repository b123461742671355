package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/you-not-fish/lox/internal/syntax"
)

func syntaxError(filename string, line int, lit string) *syntax.SyntaxError {
	return &syntax.SyntaxError{
		Pos: syntax.NewPos(filename, line),
		Tok: syntax.Token{Kind: syntax.EOF, Lit: lit, Line: line},
		Msg: "expected expression",
	}
}

func TestReportPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever, false)
	p.Report(syntaxError("test.lox", 3, "&"))

	if got, want := buf.String(), "ParseError at [test.lox:3]: error with '&'\n"; got != want {
		t.Errorf("Report = %q, want %q", got, want)
	}
	if p.Count() != 1 {
		t.Errorf("Count() = %d, want 1", p.Count())
	}
}

func TestReportVerbose(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever, true)
	p.Report(syntaxError("", 0, ";"))

	if got, want := buf.String(), "ParseError at [0]: error with ';' (expected expression)\n"; got != want {
		t.Errorf("Report = %q, want %q", got, want)
	}
}

func TestReportColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorAlways, false)
	p.Report(syntaxError("test.lox", 1, "@"))

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("Report = %q, want ANSI escape sequences", out)
	}
	if !strings.Contains(out, "ParseError at [test.lox:1]:") || !strings.HasSuffix(out, "error with '@'\n") {
		t.Errorf("Report = %q, missing diagnostic text", out)
	}
}

func TestHandlerCounts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever, false)

	_, err := syntax.ParseString("in.lox", "&; 1; @;", p.Handler())
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if p.Count() != 2 {
		t.Errorf("Count() = %d, want 2", p.Count())
	}
	want := "ParseError at [in.lox:0]: error with '&'\n" +
		"ParseError at [in.lox:0]: error with '@'\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"", ColorAuto, false},
		{"sometimes", "", true},
		{"NEVER", "", true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
