package service

import (
	"iter"
	"pairingcheck/internal/domain/valueobject"
)

// MatchLocation is one occurrence of a configured alias.
type MatchLocation struct {
	Token  string
	Offset int
}

// PairResult is the per-file aggregate for one pair.
type PairResult struct {
	PairID  int
	Score   int
	Matches []MatchLocation
}

// Balanced reports whether opens and closes cancel out.
func (r PairResult) Balanced() bool {
	return r.Score == 0
}

// Score consumes tokens and accumulates one PairResult per configured pair,
// indexed by pair identifier. Every pair starts at zero so pairs that never
// appear are balanced. Tokens unknown to the index are skipped.
func Score(index valueobject.AliasIndex, tokens iter.Seq[CandidateToken]) []PairResult {
	results := make([]PairResult, index.PairCount())
	for id := range results {
		results[id].PairID = id
	}

	for token := range tokens {
		entry, ok := index.Lookup(token.Text)
		if !ok {
			continue
		}

		result := &results[entry.PairID]
		result.Score += int(entry.Polarity)
		result.Matches = append(result.Matches, MatchLocation{
			Token:  token.Text,
			Offset: token.Offset,
		})
	}

	return results
}

// Imbalanced keeps only results with a nonzero score, in pair order.
func Imbalanced(results []PairResult) []PairResult {
	var out []PairResult
	for _, result := range results {
		if !result.Balanced() {
			out = append(out, result)
		}
	}
	return out
}

// ScanText tokenizes text and returns its imbalanced pairs.
func ScanText(index valueobject.AliasIndex, text string) []PairResult {
	return Imbalanced(Score(index, Tokenize(text)))
}
