package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"url-reconciler/core/config"
	"url-reconciler/core/logger"
	"url-reconciler/core/reconcile"
	"url-reconciler/feature/sources"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reconcileCmd runs a full reconciliation of the configured sources.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the configured URL sources",
	Long: `Loads source_a and source_b, keeps identifiers present in both, resolves
every URL and reports pairs whose destinations differ.

Side A URLs are canonicalized (tracking parameters and trailing slashes
removed). Pairs whose side B URL is an archive mirror are skipped.

Examples:
  # Report through the logger
  reconcile

  # Print the full report as JSON
  reconcile --json > report.json

  # Slower, gentler run
  reconcile --concurrency 4 --batch-size 20 --timeout 60`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().Bool("json", false, "Print the report as JSON to stdout")
	reconcileCmd.Flags().Int("concurrency", 0, "Maximum concurrent fetches (overrides resolver.concurrency)")
	reconcileCmd.Flags().Int("batch-size", 0, "URLs per side per batch (overrides resolver.batch_size)")
	reconcileCmd.Flags().Int("timeout", 0, "Per-request timeout in seconds (overrides resolver.timeout_seconds)")

	RootCmd.AddCommand(reconcileCmd)
}

// applyResolverFlags copies non-zero flag values over the configuration.
func applyResolverFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetInt("concurrency"); v > 0 {
		cfg.Resolver.Concurrency = v
	}
	if v, _ := cmd.Flags().GetInt("batch-size"); v > 0 {
		cfg.Resolver.BatchSize = v
	}
	if v, _ := cmd.Flags().GetInt("timeout"); v > 0 {
		cfg.Resolver.TimeoutSeconds = v
	}
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyResolverFlags(cmd, cfg)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	conns, err := connect(ctx, cfg, l, true)
	if err != nil {
		return err
	}
	defer conns.Close()

	srcA, srcB, err := buildSources(cfg, conns.deps)
	if err != nil {
		return err
	}

	l.Info("Loading data from sources...", zap.String("source_a", srcA.Name()), zap.String("source_b", srcB.Name()))
	pairsA, pairsB, err := sources.LoadBoth(ctx, srcA, srcB)
	if err != nil {
		return err
	}

	engine := newEngine(cfg, reconcile.NewLogObserver(l))
	l.Info("Starting URL verification...",
		zap.Int("rows_a", len(pairsA)),
		zap.Int("rows_b", len(pairsB)),
		zap.Int("concurrency", cfg.Resolver.Concurrency),
		zap.Int("batch_size", cfg.Resolver.BatchSize),
	)

	report, err := engine.Reconcile(ctx, pairsA, pairsB)
	if err != nil {
		if errors.Is(err, reconcile.ErrNoOverlap) {
			l.Error("No common IDs found between sources")
		}
		return err
	}

	printReport(l, report)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	}
	return nil
}

// printReport logs the run summary. Mismatches are logged as they are found.
func printReport(l *zap.Logger, report *reconcile.Report) {
	s := report.Summary
	l.Info("Verification complete",
		zap.String("run_id", report.RunID),
		zap.Int("common_ids", s.CommonIDs),
		zap.Int("only_in_a", s.OnlyInA),
		zap.Int("only_in_b", s.OnlyInB),
		zap.Int("compared", s.Compared),
		zap.Int("mismatches", s.Mismatches),
		zap.Int("archive_skipped", s.ArchiveSkipped),
		zap.Int("fetch_warnings", s.FetchWarnings),
		zap.Int("batches", s.Batches),
		zap.Duration("execution_time", report.Duration),
	)
}
