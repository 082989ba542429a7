package syntax

import "sort"

// LineIndex maps byte offsets to 1-based line/column positions and back.
// It handles both LF and CRLF line endings and is immutable once built.
type LineIndex struct {
	spans []lineSpan
	size  int
}

// lineSpan records one line: its start, where its newline bytes begin, and
// the offset just past them. For the last line without a trailing newline,
// newline equals end.
type lineSpan struct {
	start   int
	newline int
	end     int
}

// NewLineIndex builds a line index over content.
func NewLineIndex(content []byte) *LineIndex {
	ix := &LineIndex{size: len(content)}
	lineStart := 0
	for i, b := range content {
		if b != '\n' {
			continue
		}
		newline := i
		if i > 0 && content[i-1] == '\r' {
			newline = i - 1
		}
		ix.spans = append(ix.spans, lineSpan{start: lineStart, newline: newline, end: i + 1})
		lineStart = i + 1
	}
	ix.spans = append(ix.spans, lineSpan{start: lineStart, newline: len(content), end: len(content)})
	return ix
}

// LineCount returns the number of lines.
func (ix *LineIndex) LineCount() int { return len(ix.spans) }

// PositionFor converts a byte offset to 1-based line and column. Column
// counts bytes. Returns (0, 0) for a negative offset; offsets at or past
// the end map to the last line.
func (ix *LineIndex) PositionFor(offset int) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	if offset >= ix.size {
		last := ix.spans[len(ix.spans)-1]
		return len(ix.spans), offset - last.start + 1
	}
	i := sort.Search(len(ix.spans), func(i int) bool {
		return ix.spans[i].end > offset
	})
	return i + 1, offset - ix.spans[i].start + 1
}

// OffsetFor converts 1-based line and column to a byte offset. Column may
// point one past the end of the line. Returns (0, false) when out of range.
func (ix *LineIndex) OffsetFor(line, col int) (int, bool) {
	if line < 1 || line > len(ix.spans) || col < 1 {
		return 0, false
	}
	span := ix.spans[line-1]
	offset := span.start + col - 1
	if offset > span.end {
		return 0, false
	}
	return offset, true
}

// Line returns the bounds of a 1-based line, excluding the newline bytes.
func (ix *LineIndex) Line(line int) (start, end int, ok bool) {
	if line < 1 || line > len(ix.spans) {
		return 0, 0, false
	}
	span := ix.spans[line-1]
	return span.start, span.newline, true
}
