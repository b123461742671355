package syntax

import (
	"bufio"
	"io"
	"unicode"
)

// maxLineSize bounds a single physical source line.
const maxLineSize = 1 << 20

// source is a line reader with position tracking.
// It hands the scanner one physical line at a time.
type source struct {
	filename string
	rd       *bufio.Scanner

	line int    // 0-based index of the current line, -1 before the first
	text string // current line, without the line terminator
}

// newSource creates a new source reading lines from src.
func newSource(filename string, src io.Reader) *source {
	rd := bufio.NewScanner(src)
	rd.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &source{
		filename: filename,
		rd:       rd,
		line:     -1,
	}
}

// nextLine advances to the next physical line.
// It returns false at end of input or on a read error; see err.
func (s *source) nextLine() bool {
	if !s.rd.Scan() {
		return false
	}
	s.line++
	s.text = s.rd.Text()
	return true
}

// err returns the first read error, if any.
func (s *source) err() error {
	return s.rd.Err()
}

// lastLine returns the index of the last line read, or 0 if the source
// was empty.
func (s *source) lastLine() int {
	if s.line < 0 {
		return 0
	}
	return s.line
}

// Character classification helpers

// isWordChar reports whether r belongs to a word run: a letter, a digit or '_'.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isDigits reports whether s is a non-empty run of decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
