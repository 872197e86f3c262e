package service

import (
	"context"
	"fmt"
	"pairingcheck/internal/application/common/slogger"
	"pairingcheck/internal/application/dto"
	domainservice "pairingcheck/internal/domain/service"
	"pairingcheck/internal/domain/valueobject"
	"pairingcheck/internal/port/inbound"
	"pairingcheck/internal/port/outbound"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when PairingCheckConfig.Concurrency is unset.
const DefaultConcurrency = 8

// PairingCheckConfig tunes a PairingCheckService.
type PairingCheckConfig struct {
	Concurrency int
	Report      domainservice.ReportOptions
}

// PairingCheckService scans files for unbalanced paired calls.
type PairingCheckService struct {
	table   valueobject.PairTable
	index   valueobject.AliasIndex
	reader  outbound.SourceReader
	metrics *CheckMetrics
	config  PairingCheckConfig
}

var _ inbound.PairingChecker = (*PairingCheckService)(nil)

// NewPairingCheckService builds the alias index for table once; it is shared
// read-only by every scan. metrics may be nil.
func NewPairingCheckService(
	table valueobject.PairTable,
	reader outbound.SourceReader,
	metrics *CheckMetrics,
	config PairingCheckConfig,
) *PairingCheckService {
	if config.Concurrency < 1 {
		config.Concurrency = DefaultConcurrency
	}
	return &PairingCheckService{
		table:   table,
		index:   valueobject.NewAliasIndex(table),
		reader:  reader,
		metrics: metrics,
		config:  config,
	}
}

// Conflicts returns aliases that were registered under more than one pair.
func (s *PairingCheckService) Conflicts() []valueobject.AliasConflict {
	return s.index.Conflicts()
}

// CheckText scans already-loaded file contents.
func (s *PairingCheckService) CheckText(path, text string) dto.FileOutcome {
	imbalanced := domainservice.ScanText(s.index, text)
	return dto.FileOutcome{
		Path:        path,
		Passed:      len(imbalanced) == 0,
		Diagnostics: domainservice.BuildDiagnostics(s.table, text, imbalanced, s.config.Report),
	}
}

// CheckFile reads and scans a single file. Read failures are reported in the
// outcome, never returned.
func (s *PairingCheckService) CheckFile(ctx context.Context, path string) dto.FileOutcome {
	start := time.Now()

	var outcome dto.FileOutcome
	text, err := s.reader.ReadSource(ctx, path)
	if err != nil {
		slogger.Warn(ctx, "Failed to read source file", slogger.Fields2(
			"file_path", path,
			"error", err.Error(),
		))
		outcome = dto.NewFailedOutcome(path, err)
	} else {
		outcome = s.CheckText(path, text)
	}

	elapsed := time.Since(start)
	s.metrics.RecordFileOutcome(ctx, outcome, elapsed)

	if !outcome.Passed && outcome.Err == nil {
		slogger.Info(ctx, "File has mismatched pairings", slogger.Fields2(
			"file_path", path,
			"imbalances", len(outcome.Diagnostics),
		))
	}
	slogger.Debug(ctx, "File scanned", slogger.Fields3(
		"file_path", path,
		"passed", outcome.Passed,
		"duration", elapsed.String(),
	))

	return outcome
}

// CheckFiles scans paths with bounded parallelism. Outcomes keep the order of
// paths. Imbalances and read failures never stop other files; cancelling ctx
// stops scheduling and the unscanned files are reported as failed with the
// context error, which is also returned.
func (s *PairingCheckService) CheckFiles(ctx context.Context, paths []string) (*dto.CheckSummary, error) {
	start := time.Now()
	outcomes := make([]dto.FileOutcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i, path := range paths {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(paths); j++ {
				outcomes[j] = dto.NewFailedOutcome(paths[j], fmt.Errorf("check cancelled: %w", err))
			}
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = dto.NewFailedOutcome(path, fmt.Errorf("check cancelled: %w", err))
				return nil
			}
			outcomes[i] = s.CheckFile(gctx, path)
			return nil
		})
	}

	// Workers never fail; the group only bounds and joins them.
	_ = g.Wait()

	summary := dto.NewCheckSummary(outcomes)
	slogger.LogPerformance(ctx, "check_files", time.Since(start), slogger.Fields3(
		"files", summary.FilesChecked,
		"failed", summary.FilesFailed,
		"concurrency", s.config.Concurrency,
	))

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("check interrupted: %w", err)
	}
	return summary, nil
}
