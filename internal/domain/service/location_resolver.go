package service

import "strings"

// Location is a 1-based line and column. Columns count bytes.
type Location struct {
	Line   int
	Column int
}

// ResolveLocation converts a byte offset into a line and column by counting
// newlines from the start of text. Offsets past the end are clamped.
func ResolveLocation(text string, offset int) Location {
	offset = clampOffset(text, offset)

	loc := Location{Line: 1, Column: 1}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			loc.Line++
			loc.Column = 1
		} else {
			loc.Column++
		}
	}
	return loc
}

// ExtractSourceLine returns the line of text containing offset, without its
// line terminator. A trailing carriage return is dropped as well.
func ExtractSourceLine(text string, offset int) string {
	offset = clampOffset(text, offset)

	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := len(text)
	if idx := strings.IndexByte(text[offset:], '\n'); idx >= 0 {
		end = offset + idx
	}

	return strings.TrimSuffix(text[start:end], "\r")
}

func clampOffset(text string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(text) {
		return len(text)
	}
	return offset
}
