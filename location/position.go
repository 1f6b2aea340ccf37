// Package location maps offsets into a source to 1-indexed line and column positions.
package location

import (
	"fmt"
	"sort"
)

// Position in a source.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Resolve the position of offset in src by scanning from the start.
//
// Every newline strictly before offset starts a new line. Offsets outside [0, len(src)] are clamped.
func Resolve(src []rune, offset int) Position {
	offset = clamp(offset, len(src))
	line, column := 1, 1
	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return Position{Offset: offset, Line: line, Column: column}
}

// A Table resolves positions in a fixed source in O(log lines).
type Table struct {
	filename string
	size     int
	// Offset of the first element of each line.
	starts []int
}

// NewTable indexes the line starts of src.
func NewTable(filename string, src []rune) *Table {
	starts := []int{0}
	for i, r := range src {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Table{filename: filename, size: len(src), starts: starts}
}

// Filename the table was built with.
func (t *Table) Filename() string { return t.filename }

// Lines in the indexed source.
func (t *Table) Lines() int { return len(t.starts) }

// Position of offset.
func (t *Table) Position(offset int) Position {
	offset = clamp(offset, t.size)
	line := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > offset }) - 1
	return Position{
		Filename: t.filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - t.starts[line] + 1,
	}
}

func clamp(offset, size int) int {
	if offset < 0 {
		return 0
	}
	if offset > size {
		return size
	}
	return offset
}
