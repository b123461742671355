package syntax

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InvariantError reports that the tokenization rules produced an identifier
// containing a reserved symbol. It signals a bug in the scanner itself and
// is raised with panic, never returned.
type InvariantError struct {
	Lit  string // offending identifier lexeme
	Sym  string // reserved symbol found inside it
	Line int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("syntax: line %d: identifier %q contains reserved symbol %q", e.Line, e.Lit, e.Sym)
}

// Scanner performs lexical analysis on Lox source text, one physical
// line at a time.
type Scanner struct {
	*source // embedded line reader

	toks    []Token
	scanErr error
	done    bool
}

// NewScanner creates a new Scanner for the given source.
// Nothing is read until Scan is called.
func NewScanner(filename string, src io.Reader) *Scanner {
	return &Scanner{source: newSource(filename, src)}
}

// Scan reads the whole source and returns its token sequence, terminated
// by exactly one EOF token. If the source cannot be read, Scan returns a
// nil sequence and the read error. Repeated calls return the same result.
func (s *Scanner) Scan() ([]Token, error) {
	if s.done {
		return s.toks, s.scanErr
	}
	s.done = true

	for s.nextLine() {
		s.scanLine()
	}
	if err := s.source.err(); err != nil {
		s.toks = nil
		s.scanErr = fmt.Errorf("reading %s: %w", s.displayName(), err)
		return nil, s.scanErr
	}

	s.toks = append(s.toks, Token{Kind: _EOF, Line: s.lastLine()})
	return s.toks, nil
}

// ScanFile opens and scans the file at path.
func ScanFile(path string) ([]Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewScanner(path, f).Scan()
}

// ScanString scans in-memory source text. The only possible error is a
// line longer than maxLineSize.
func ScanString(src string) ([]Token, error) {
	return NewScanner("", strings.NewReader(src)).Scan()
}

func (s *Scanner) displayName() string {
	if s.filename == "" {
		return "source"
	}
	return s.filename
}

// emit appends a token on the current line.
func (s *Scanner) emit(kind Kind, lit string) {
	s.toks = append(s.toks, Token{Kind: kind, Lit: lit, Line: s.line})
}

// scanLine tokenizes the current physical line.
//
// The line is split on '"'. Fragments at odd positions are string bodies
// and become one STRING token each, verbatim; fragments at even positions
// are code. A line is assumed never to start inside a string, and strings
// cannot span lines or contain escaped quotes.
func (s *Scanner) scanLine() {
	line := strings.TrimSpace(s.text)
	for i, frag := range strings.Split(line, `"`) {
		if i%2 == 1 {
			s.emit(_String, frag)
			continue
		}
		s.scanCode(frag)
	}
}

// scanCode classifies the lexeme candidates of a code fragment, with one
// candidate of lookahead for two-character operators.
func (s *Scanner) scanCode(frag string) {
	cands := splitWords(frag)
	for i := 0; i < len(cands); i++ {
		lit := cands[i]

		if kind, ok := keywords[lit]; ok {
			s.emit(kind, lit)
			continue
		}

		// == != >= <= arrive as two candidates; merge and skip the '='.
		if kind, ok := twoChar[lit]; ok && i+1 < len(cands) && cands[i+1] == "=" {
			s.emit(kind, lit+"=")
			i++
			continue
		}

		if kind, ok := symbols[lit]; ok {
			s.emit(kind, lit)
			continue
		}

		// A decimal point is not merged here; the parser reassembles
		// NUMBER DOT NUMBER into one constant.
		if isDigits(lit) {
			s.emit(_Number, lit)
			continue
		}

		s.checkIdent(lit)
		s.emit(_Name, lit)
	}
}

// checkIdent panics with an *InvariantError if lit contains any operator
// or punctuation symbol.
func (s *Scanner) checkIdent(lit string) {
	for k := _Comma; k <= _Leq; k++ {
		if sym := k.String(); strings.Contains(lit, sym) {
			panic(&InvariantError{Lit: lit, Sym: sym, Line: s.line})
		}
	}
}

// splitWords separates runs of word characters from individual non-word
// characters, dropping whitespace.
func splitWords(frag string) []string {
	var cands []string
	start := -1
	for i, r := range frag {
		if isWordChar(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			cands = append(cands, frag[start:i])
			start = -1
		}
		if !unicode.IsSpace(r) {
			// Slice the source so invalid UTF-8 bytes are kept as is.
			_, size := utf8.DecodeRuneInString(frag[i:])
			cands = append(cands, frag[i:i+size])
		}
	}
	if start >= 0 {
		cands = append(cands, frag[start:])
	}
	return cands
}
