// classgrade reconciles practice-platform progress exports against an LMS
// gradebook: the merge subcommand aggregates per-task completion into
// per-assignment points and writes them into the gradebook's matching
// columns, and the final-grades subcommand computes overall course grades
// from an already-merged gradebook.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Logger, initialized per invocation with a run correlation ID.
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "classgrade",
	Short: "Reconcile practice-platform progress into an LMS gradebook",
	Long: `classgrade reads the "Detailed Progress" XLSX export from the online
practice platform and an exported LMS gradebook CSV, aggregates per-task
completion into per-assignment point totals, validates those totals against
the declared assignment rubric, and writes them into the matching gradebook
columns.

Every validation failure aborts the run before any output is written; the
prior gradebook state is never partially overwritten.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if quiet {
			config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Log errors only")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(finalGradesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
