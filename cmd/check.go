package cmd

import (
	"fmt"
	"pairingcheck/internal/adapter/outbound/filesource"
	"pairingcheck/internal/adapter/outbound/gitchanges"
	"pairingcheck/internal/adapter/outbound/report"
	"pairingcheck/internal/application/common/logging"
	"pairingcheck/internal/application/common/slogger"
	"pairingcheck/internal/application/service"
	"pairingcheck/internal/config"
	domainservice "pairingcheck/internal/domain/service"

	"github.com/spf13/cobra"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check files for unbalanced paired calls",
		Long: `Check scans every file for calls to configured open and close functions
and reports the pairs whose counts do not cancel out, with the line of
every matching call.

Files are checked independently. The command prints "Good to go!" and
exits 0 only when every file is balanced and readable.

With --git-changed the files added or modified in the git worktree are
checked as well, which makes the command usable as a pre-commit hook.`,
		Example: `  pairingcheck check src/scene.c src/player.c
  pairingcheck check --pairs pairs.yaml --format json src/*.c
  pairingcheck check --git-changed --repo ~/src/game`,
		RunE: runCheck,
	}

	flags := cmd.Flags()
	flags.String("pairs", "", "YAML pair table (default: built-in table)")
	flags.StringP("format", "f", config.FormatText, "Report format (text, json)")
	flags.Bool("omit-counts", false, "Do not print per-alias occurrence counts")
	flags.IntP("concurrency", "j", config.DefaultConcurrency, "Number of files scanned in parallel")
	flags.Bool("warn-conflicts", false, "Warn about aliases registered under more than one pair")
	flags.Bool("git-changed", false, "Also check files added or modified in the git worktree")
	flags.String("repo", ".", "Path inside the git worktree used by --git-changed")
	flags.Bool("include-untracked", false, "Include untracked files with --git-changed")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := logging.NewCorrelationID(cmd.Context())

	table, err := config.LoadPairTable(cfg.Check.PairsFile)
	if err != nil {
		return err
	}

	writer, err := report.NewWriter(cfg.Check.Format)
	if err != nil {
		return err
	}

	metrics, err := service.NewCheckMetrics()
	if err != nil {
		return fmt.Errorf("failed to create check metrics: %w", err)
	}

	checker := service.NewPairingCheckService(table, filesource.New(), metrics, service.PairingCheckConfig{
		Concurrency: cfg.Check.Concurrency,
		Report:      domainservice.ReportOptions{OmitCounts: cfg.Check.OmitCounts},
	})

	if cfg.Check.WarnConflicts {
		for _, conflict := range checker.Conflicts() {
			slogger.Warn(ctx, "Alias registered under more than one pair", slogger.Fields3(
				"alias", conflict.Alias,
				"overridden_pair", table.Label(conflict.Overridden.PairID),
				"winning_pair", table.Label(conflict.Winner.PairID),
			))
		}
	}

	paths := args
	if cfg.Git.Enabled {
		lister := gitchanges.New(gitchanges.Options{
			IncludeUntracked: cfg.Git.IncludeUntracked,
			Extensions:       cfg.Git.Extensions,
		})
		changed, err := lister.ListChangedFiles(ctx, cfg.Git.Repository)
		if err != nil {
			return err
		}
		paths = mergePaths(args, changed)
	}

	slogger.Debug(ctx, "Starting pairing check", slogger.Fields3(
		"files", len(paths),
		"pairs", table.Len(),
		"concurrency", cfg.Check.Concurrency,
	))

	summary, checkErr := checker.CheckFiles(ctx, paths)
	if err := writer.Write(cmd.OutOrStdout(), cmd.ErrOrStderr(), summary); err != nil {
		slogger.ErrorWithError(ctx, err, "Failed to write report", slogger.Fields2(
			"format", cfg.Check.Format,
			"files", summary.FilesChecked,
		))
		return err
	}

	switch {
	case checkErr != nil:
		return checkErr
	case !summary.Passed:
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, summary.FilesFailed, summary.FilesChecked)
	default:
		return nil
	}
}

// mergePaths appends extra to paths, skipping entries already present.
func mergePaths(paths, extra []string) []string {
	seen := make(map[string]struct{}, len(paths)+len(extra))
	merged := make([]string, 0, len(paths)+len(extra))
	for _, list := range [][]string{paths, extra} {
		for _, path := range list {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			merged = append(merged, path)
		}
	}
	return merged
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newCheckCmd())
}
