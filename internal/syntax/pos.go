package syntax

import (
	"fmt"
	"path/filepath"
)

// Pos represents a position in a source file.
// Lines are 0-based physical line indices, matching Token.Line.
type Pos struct {
	filename string // source file name, empty for in-memory sources
	line     int    // 0-based line index
}

// NewPos creates a new Pos with the given filename and 0-based line.
func NewPos(filename string, line int) Pos {
	return Pos{filename: filename, line: line}
}

// String returns a string representation of the position in the format
// "file:line" or "line" if filename is empty. Only the base name of the
// file is shown.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d", filepath.Base(p.filename), p.line)
	}
	return fmt.Sprintf("%d", p.line)
}

// Line returns the 0-based line index.
func (p Pos) Line() int {
	return p.line
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}
