package cmd

import (
	"fmt"

	"url-reconciler/core/config"
	"url-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd resolves and compares a single pair.
var checkCmd = &cobra.Command{
	Use:   "check [urlA] [urlB]",
	Short: "Resolve and compare a single URL pair",
	Long:  `Follows redirects for both URLs, canonicalizes the first and reports whether they point to the same resource.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		l.Info("Checking URL pair...", zap.String("url_a", args[0]), zap.String("url_b", args[1]))
		v := newEngine(cfg).CheckPair(cmd.Context(), args[0], args[1])

		fmt.Println("\n--- URL Pair Check ---")
		fmt.Printf("URL A:          %s\n", v.URLA)
		fmt.Printf("Resolved A:     %s\n", v.ResolvedA)
		fmt.Printf("Canonical A:    %s\n", v.CanonicalA)
		fmt.Printf("URL B:          %s\n", v.URLB)
		fmt.Printf("Resolved B:     %s\n", v.ResolvedB)
		fmt.Println("----------------------")

		statusColor := "\033[32m" // Green
		if v.Archived {
			statusColor = "\033[33m" // Yellow
		} else if !v.Match {
			statusColor = "\033[31m" // Red
		}
		fmt.Printf("Verdict:        %s%s\033[0m\n", statusColor, v.Reason)

		if len(v.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for _, w := range v.Warnings {
				fmt.Printf("- %s\n", w)
			}
		}
		fmt.Println("----------------------")
		return nil
	},
}

func init() {
	checkCmd.Flags().Int("concurrency", 0, "Maximum concurrent fetches (overrides resolver.concurrency)")
	checkCmd.Flags().Int("batch-size", 0, "URLs per side per batch (overrides resolver.batch_size)")
	checkCmd.Flags().Int("timeout", 0, "Per-request timeout in seconds (overrides resolver.timeout_seconds)")

	RootCmd.AddCommand(checkCmd)
}
