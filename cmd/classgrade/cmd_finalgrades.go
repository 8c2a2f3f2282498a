// Package main: final-grades subcommand. Computes overall course grades from
// an already-merged gradebook export.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"classgrade/internal/config"
	"classgrade/internal/finalgrades"
	"classgrade/internal/table"
)

var (
	finalGradesConfigFile string
	finalGradesCeiling    float64
)

var finalGradesCmd = &cobra.Command{
	Use:   "final-grades <gradebook.csv>",
	Short: "Print final course grades computed from a gradebook CSV",
	Long: `Averages each student's per-unit Final Score columns (clamped to the
ceiling) and maps the result to a letter through the configured grade
cutoffs. Each unit's Final Score is cross-checked against its Current Score
before it is trusted.`,
	Args: cobra.ExactArgs(1),
	RunE: runFinalGrades,
}

func init() {
	finalGradesCmd.Flags().StringVarP(&finalGradesConfigFile, "config", "c", "",
		"Grade-cutoff YAML listing units and letter minimums (default: embedded config)")
	finalGradesCmd.Flags().Float64Var(&finalGradesCeiling, "ceiling", 100,
		"Per-unit score clamp applied before averaging")
}

func runFinalGrades(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFinalGrades(finalGradesConfigFile)
	if err != nil {
		return err
	}

	gb, err := table.LoadCSV(args[0])
	if err != nil {
		return err
	}
	logger.Debug("gradebook loaded",
		zap.String("path", args[0]),
		zap.Int("rows", gb.NumRows()))

	results, err := finalgrades.Calc(logger, gb, cfg,
		finalgrades.WithCeiling(finalGradesCeiling))
	if err != nil {
		return err
	}
	if err := finalgrades.AssignLetters(results, cfg); err != nil {
		return err
	}

	fmt.Println(finalgrades.FormatResults(results))
	return nil
}
