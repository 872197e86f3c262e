package dto

import "pairingcheck/internal/domain/service"

// FileOutcome is the result of checking one file.
type FileOutcome struct {
	Path        string               `json:"path"`
	Passed      bool                 `json:"passed"`
	Diagnostics []service.Diagnostic `json:"diagnostics,omitempty"`
	Err         error                `json:"-"`
	Error       string               `json:"error,omitempty"`
}

// NewFailedOutcome creates an outcome for a file that could not be scanned.
func NewFailedOutcome(path string, err error) FileOutcome {
	return FileOutcome{
		Path:  path,
		Err:   err,
		Error: err.Error(),
	}
}

// CheckSummary aggregates the outcomes of one invocation. Outcomes keep the
// order of the input paths.
type CheckSummary struct {
	Passed       bool          `json:"passed"`
	FilesChecked int           `json:"files_checked"`
	FilesFailed  int           `json:"files_failed"`
	Outcomes     []FileOutcome `json:"files"`
}

// NewCheckSummary combines outcomes with a logical AND.
func NewCheckSummary(outcomes []FileOutcome) *CheckSummary {
	summary := &CheckSummary{
		Passed:       true,
		FilesChecked: len(outcomes),
		Outcomes:     outcomes,
	}
	for _, outcome := range outcomes {
		if !outcome.Passed {
			summary.Passed = false
			summary.FilesFailed++
		}
	}
	return summary
}

// Failed returns the outcomes that did not pass.
func (s *CheckSummary) Failed() []FileOutcome {
	var failed []FileOutcome
	for _, outcome := range s.Outcomes {
		if !outcome.Passed {
			failed = append(failed, outcome)
		}
	}
	return failed
}
