package service

import (
	"pairingcheck/internal/domain/valueobject"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDiagnostics(t *testing.T) {
	table := testTable()
	index := valueobject.NewAliasIndex(table)
	text := "int main() {\n  malloc(1); malloc(2);\n  free(x);\n}\n"

	diagnostics := BuildDiagnostics(table, text, ScanText(index, text), ReportOptions{})

	require.Len(t, diagnostics, 1)
	diag := diagnostics[0]
	assert.Equal(t, "malloc/free", diag.PairLabel)
	assert.Equal(t, 1, diag.Score)
	assert.Equal(t, []AliasCount{{Alias: "malloc", Count: 2}, {Alias: "free", Count: 1}}, diag.Occurrences)
	assert.Equal(t, "malloc = 2, free = 1", diag.OccurrenceSummary())
	assert.Equal(t, []DiagnosticLocation{
		{Alias: "malloc", Line: 2, Column: 3, SourceLine: "  malloc(1); malloc(2);"},
		{Alias: "malloc", Line: 2, Column: 14, SourceLine: "  malloc(1); malloc(2);"},
		{Alias: "free", Line: 3, Column: 3, SourceLine: "  free(x);"},
	}, diag.Locations)
}

func TestBuildDiagnostics_CountsFollowFirstAppearance(t *testing.T) {
	table := testTable()
	index := valueobject.NewAliasIndex(table)
	text := "renderable_destroy(a); renderable_single_axis_init(b); renderable_init(c); renderable_init(d);"

	diagnostics := BuildDiagnostics(table, text, ScanText(index, text), ReportOptions{})

	require.Len(t, diagnostics, 1)
	assert.Equal(t, "renderable_destroy = 1, renderable_single_axis_init = 1, renderable_init = 2",
		diagnostics[0].OccurrenceSummary())
}

func TestBuildDiagnostics_OmitCounts(t *testing.T) {
	table := testTable()
	index := valueobject.NewAliasIndex(table)
	text := "malloc(1);"

	diagnostics := BuildDiagnostics(table, text, ScanText(index, text), ReportOptions{OmitCounts: true})

	require.Len(t, diagnostics, 1)
	assert.Nil(t, diagnostics[0].Occurrences)
	assert.Empty(t, diagnostics[0].OccurrenceSummary())
	assert.Len(t, diagnostics[0].Locations, 1)
}

func TestBuildDiagnostics_NoImbalances(t *testing.T) {
	diagnostics := BuildDiagnostics(testTable(), "free(x); malloc(1);", nil, ReportOptions{})

	assert.Empty(t, diagnostics)
}
