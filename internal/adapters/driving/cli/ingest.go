package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

// progressInterval is how often a running ingest reports progress.
var progressInterval = 500 * time.Millisecond

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build and maintain the subtitle index",
	Long: `Keeps indexed documents consistent with the source catalog.

Only one ingest may run against an index at a time.`,
}

var ingestImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Index sources that have no record yet",
	Long: `Fetches and indexes every catalog source without a record.
Existing records are never touched, so running import twice writes nothing
the second time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runIngest(cmd, domain.IngestImport, func(ctx context.Context, o driving.IngestOrchestrator) (*domain.IngestReport, error) {
			return o.Import(ctx)
		})
	},
}

var ingestUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh records whose subtitles changed",
	Long: `Re-fetches every indexed source and rewrites records whose content
hash changed. Sources without a record are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runIngest(cmd, domain.IngestUpdate, func(ctx context.Context, o driving.IngestOrchestrator) (*domain.IngestReport, error) {
			return o.Update(ctx)
		})
	},
}

var ingestReindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Recompute tokens under the current tokenizer",
	Long: `Brings every record's tokens up to the current tokenizer version from
its stored text, committing in batches. Use --force to recompute records
that are already current.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}
		return runIngest(cmd, domain.IngestReindex, func(ctx context.Context, o driving.IngestOrchestrator) (*domain.IngestReport, error) {
			return o.Reindex(ctx, domain.ReindexOptions{Force: force})
		})
	},
}

func init() {
	ingestReindexCmd.Flags().Bool("force", false, "recompute tokens for records already at the current version")
	ingestCmd.AddCommand(ingestImportCmd, ingestUpdateCmd, ingestReindexCmd)
	rootCmd.AddCommand(ingestCmd)
}

type ingestFunc func(context.Context, driving.IngestOrchestrator) (*domain.IngestReport, error)

func runIngest(cmd *cobra.Command, mode domain.IngestMode, run ingestFunc) error {
	rt, err := requireRuntime()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	unlock, err := lockIngest(rt)
	if err != nil {
		return err
	}
	defer unlock()

	orch, err := rt.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", mode, err)
	}

	cmd.Printf("Running %s...\n", mode)
	report, err := ingestWithProgress(ctx, cmd, orch, run)
	if report != nil {
		printReport(cmd, report)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", mode, err)
	}
	return nil
}

// lockIngest takes the cross-process ingest lock without waiting.
func lockIngest(rt Runtime) (func(), error) {
	path, err := rt.LockPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring ingest lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: lock %s is held by another process", domain.ErrIngestInProgress, path)
	}
	return func() {
		lock.Unlock() //nolint:errcheck
	}, nil
}

// ingestWithProgress runs an ingest while displaying progress updates.
func ingestWithProgress(
	ctx context.Context,
	cmd *cobra.Command,
	orch driving.IngestOrchestrator,
	run ingestFunc,
) (*domain.IngestReport, error) {
	type outcome struct {
		report *domain.IngestReport
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		report, err := run(ctx, orch)
		done <- outcome{report, err}
	}()

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	lastCount := 0
	for {
		select {
		case out := <-done:
			if lastCount > 0 {
				cmd.Println()
			}
			return out.report, out.err
		case <-ticker.C:
			// Best effort; a failed status read only skips one update.
			status, statusErr := orch.Status(ctx)
			if statusErr == nil && status != nil && status.Running && status.Processed > lastCount {
				cmd.Printf("\rProcessed %d/%d (%d errors)", status.Processed, status.Total, status.ErrorCount)
				lastCount = status.Processed
			}
		}
	}
}

func printReport(cmd *cobra.Command, r *domain.IngestReport) {
	cmd.Printf("Run %s (%s): scanned %d, created %d, updated %d, unchanged %d, skipped %d",
		r.RunID, r.Mode, r.Scanned, r.Created, r.Updated, r.Unchanged, r.Skipped)
	if r.Warnings > 0 {
		cmd.Printf(", warnings %d", r.Warnings)
	}
	if r.Failed > 0 {
		cmd.Printf(", failed %d", r.Failed)
	}
	if r.Batches > 0 {
		cmd.Printf(", batches %d", r.Batches)
	}
	cmd.Println()
	if !r.FinishedAt.IsZero() && !r.StartedAt.IsZero() {
		cmd.Printf("Finished in %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	}
}
