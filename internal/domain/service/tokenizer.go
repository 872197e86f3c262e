// Package service contains the pure pairing-balance analysis: tokenizing source
// text, scoring pairs, resolving locations and building diagnostics.
package service

import (
	"iter"
	"regexp"
)

// candidatePattern is a word-character run followed by optional whitespace and
// an opening parenthesis. Leftmost-first matching makes the run maximal.
// Whitespace covers \s plus vertical tab, the Unicode space separators, the
// line and paragraph separators and the byte order mark.
var candidatePattern = regexp.MustCompile(`(\w+)[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*\(`)

// CandidateToken is something that looks like a call site.
type CandidateToken struct {
	Text   string
	Offset int // byte offset of the first character of Text
}

// Tokenize returns the candidate call sites of text in order of appearance.
// The sequence holds no state between iterations; ranging over it again
// restarts the scan. Comments and string literals are not excluded.
func Tokenize(text string) iter.Seq[CandidateToken] {
	return func(yield func(CandidateToken) bool) {
		pos := 0
		for pos < len(text) {
			loc := candidatePattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}

			token := CandidateToken{
				Text:   text[pos+loc[2] : pos+loc[3]],
				Offset: pos + loc[2],
			}
			if !yield(token) {
				return
			}

			pos += loc[1]
		}
	}
}
