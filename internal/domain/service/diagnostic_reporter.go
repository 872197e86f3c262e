package service

import (
	"fmt"
	"pairingcheck/internal/domain/valueobject"
	"strings"
)

// AliasCount is how many times one alias occurred in a file.
type AliasCount struct {
	Alias string `json:"alias"`
	Count int    `json:"count"`
}

// DiagnosticLocation is one match resolved to a source position.
type DiagnosticLocation struct {
	Alias      string `json:"alias"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	SourceLine string `json:"source_line"`
}

// Diagnostic describes one imbalanced pair in one file.
type Diagnostic struct {
	PairID      int                  `json:"pair_id"`
	PairLabel   string               `json:"pair"`
	Score       int                  `json:"score"`
	Occurrences []AliasCount         `json:"occurrences,omitempty"`
	Locations   []DiagnosticLocation `json:"locations"`
}

// OccurrenceSummary renders the counts as "malloc = 2, free = 1".
func (d Diagnostic) OccurrenceSummary() string {
	parts := make([]string, 0, len(d.Occurrences))
	for _, occ := range d.Occurrences {
		parts = append(parts, fmt.Sprintf("%s = %d", occ.Alias, occ.Count))
	}
	return strings.Join(parts, ", ")
}

// ReportOptions tunes the diagnostic content.
type ReportOptions struct {
	// OmitCounts drops the per-alias occurrence summary.
	OmitCounts bool
}

// BuildDiagnostics turns imbalanced results for one file into diagnostics.
// Occurrence counts are listed in order of first appearance.
func BuildDiagnostics(
	table valueobject.PairTable,
	text string,
	imbalanced []PairResult,
	opts ReportOptions,
) []Diagnostic {
	diagnostics := make([]Diagnostic, 0, len(imbalanced))

	for _, result := range imbalanced {
		diag := Diagnostic{
			PairID:    result.PairID,
			PairLabel: table.Label(result.PairID),
			Score:     result.Score,
			Locations: make([]DiagnosticLocation, 0, len(result.Matches)),
		}

		if !opts.OmitCounts {
			diag.Occurrences = countOccurrences(result.Matches)
		}

		for _, match := range result.Matches {
			loc := ResolveLocation(text, match.Offset)
			diag.Locations = append(diag.Locations, DiagnosticLocation{
				Alias:      match.Token,
				Line:       loc.Line,
				Column:     loc.Column,
				SourceLine: ExtractSourceLine(text, match.Offset),
			})
		}

		diagnostics = append(diagnostics, diag)
	}

	return diagnostics
}

func countOccurrences(matches []MatchLocation) []AliasCount {
	var counts []AliasCount
	position := make(map[string]int)

	for _, match := range matches {
		if i, ok := position[match.Token]; ok {
			counts[i].Count++
			continue
		}
		position[match.Token] = len(counts)
		counts = append(counts, AliasCount{Alias: match.Token, Count: 1})
	}

	return counts
}
