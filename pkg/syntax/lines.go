package syntax

import "sort"

// LineInfo holds metadata for a single line of the source.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line (may not have a trailing newline, may be empty).
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the source.
func (t *Tree) LineCount() int {
	return len(t.lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (t *Tree) LineAt(offset int) (int, int) {
	if offset < 0 || offset > len(t.content) || len(t.lines) == 0 {
		return 0, 0
	}

	if offset == len(t.content) {
		lastLine := t.lines[len(t.lines)-1]
		return len(t.lines), offset - lastLine.StartOffset + 1
	}

	lineIdx := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].EndOffset > offset
	})
	if lineIdx >= len(t.lines) {
		lineIdx = len(t.lines) - 1
	}

	lineInfo := t.lines[lineIdx]
	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - lineInfo.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
func (t *Tree) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(t.lines) || col < 1 {
		return 0, false
	}

	lineInfo := t.lines[line-1]
	offset := lineInfo.StartOffset + col - 1

	// Allow column to point to end of line (for cursor positioning).
	if offset > lineInfo.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (t *Tree) LineContent(line int) []byte {
	if line < 1 || line > len(t.lines) {
		return nil
	}

	lineInfo := t.lines[line-1]
	return t.content[lineInfo.StartOffset:lineInfo.NewlineStart]
}

// Position converts a byte range to line/column positions.
func (t *Tree) Position(r SourceRange) SourcePosition {
	startLine, startCol := t.LineAt(r.StartOffset)
	endLine, endCol := t.LineAt(r.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}
