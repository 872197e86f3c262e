package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"pairingcheck/internal/application/dto"
	"pairingcheck/internal/domain/errors/domain"
	"pairingcheck/internal/domain/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imbalancedOutcome() dto.FileOutcome {
	return dto.FileOutcome{
		Path: "src/scene.c",
		Diagnostics: []service.Diagnostic{
			{
				PairLabel:   "malloc/free",
				Score:       1,
				Occurrences: []service.AliasCount{{Alias: "malloc", Count: 2}, {Alias: "free", Count: 1}},
				Locations: []service.DiagnosticLocation{
					{Alias: "malloc", Line: 1, Column: 1, SourceLine: "malloc(1); malloc(2); free(x);"},
					{Alias: "malloc", Line: 1, Column: 12, SourceLine: "malloc(1); malloc(2); free(x);"},
					{Alias: "free", Line: 1, Column: 23, SourceLine: "malloc(1); malloc(2); free(x);"},
				},
			},
		},
	}
}

func TestTextWriter_ImbalancedFile(t *testing.T) {
	summary := dto.NewCheckSummary([]dto.FileOutcome{
		{Path: "src/ok.c", Passed: true},
		imbalancedOutcome(),
	})

	var out, errOut bytes.Buffer
	require.NoError(t, NewTextWriter().Write(&out, &errOut, summary))

	want := "file src/scene.c has mismatched pairings\n" +
		"    pairings malloc = 2, free = 1\n" +
		"        malloc src/scene.c:1\n" +
		"            malloc(1); malloc(2); free(x);\n" +
		"        malloc src/scene.c:1\n" +
		"            malloc(1); malloc(2); free(x);\n" +
		"        free src/scene.c:1\n" +
		"            malloc(1); malloc(2); free(x);\n"
	assert.Equal(t, want, errOut.String())
	assert.Empty(t, out.String())
}

func TestTextWriter_Success(t *testing.T) {
	summary := dto.NewCheckSummary([]dto.FileOutcome{{Path: "a.c", Passed: true}})

	var out, errOut bytes.Buffer
	require.NoError(t, NewTextWriter().Write(&out, &errOut, summary))

	assert.Equal(t, "Good to go!\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestFormatOutcome_ReadFailure(t *testing.T) {
	outcome := dto.NewFailedOutcome("missing.c", errors.New("open missing.c: no such file or directory"))

	assert.Equal(t, "failed to open file missing.c: open missing.c: no such file or directory\n", FormatOutcome(outcome))
}

func TestFormatOutcome_WithoutCounts(t *testing.T) {
	outcome := dto.FileOutcome{
		Path: "a.c",
		Diagnostics: []service.Diagnostic{{
			PairLabel: "update_add/update_remove",
			Score:     -1,
			Locations: []service.DiagnosticLocation{{Alias: "update_remove", Line: 3, Column: 5, SourceLine: "    update_remove(o);"}},
		}},
	}

	want := "file a.c has mismatched pairings\n" +
		"    pairing update_add/update_remove\n" +
		"        update_remove a.c:3\n" +
		"                update_remove(o);\n"
	assert.Equal(t, want, FormatOutcome(outcome))
}

func TestFormatOutcome_Passed(t *testing.T) {
	assert.Empty(t, FormatOutcome(dto.FileOutcome{Path: "a.c", Passed: true}))
}

func TestJSONWriter(t *testing.T) {
	summary := dto.NewCheckSummary([]dto.FileOutcome{
		imbalancedOutcome(),
		dto.NewFailedOutcome("missing.c", errors.New("no such file")),
	})

	var out, errOut bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&out, &errOut, summary))
	assert.Empty(t, errOut.String())

	var decoded struct {
		Passed       bool `json:"passed"`
		FilesChecked int  `json:"files_checked"`
		FilesFailed  int  `json:"files_failed"`
		Files        []struct {
			Path        string               `json:"path"`
			Passed      bool                 `json:"passed"`
			Error       string               `json:"error"`
			Diagnostics []service.Diagnostic `json:"diagnostics"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.False(t, decoded.Passed)
	assert.Equal(t, 2, decoded.FilesChecked)
	assert.Equal(t, 2, decoded.FilesFailed)
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, imbalancedOutcome().Diagnostics, decoded.Files[0].Diagnostics)
	assert.Equal(t, "no such file", decoded.Files[1].Error)
}

func TestNewWriter(t *testing.T) {
	w, err := NewWriter("text")
	require.NoError(t, err)
	assert.IsType(t, &TextWriter{}, w)

	w, err = NewWriter("json")
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, w)

	_, err = NewWriter("xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
