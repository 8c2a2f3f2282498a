// Package main: merge subcommand. Runs the accumulator over the progress
// export and merges the validated totals into the gradebook.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"classgrade/internal/config"
	"classgrade/internal/reconcile"
	"classgrade/internal/table"
)

var (
	mergeRubricFile      string
	mergeOutputFile      string
	mergeDumpAccumulated string
	mergeKeepTestStudent bool
	mergeNoTaskCheck     bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge <progress.xlsx> <gradebook.csv>",
	Short: "Merge accumulated practice-platform points into a gradebook CSV",
	Long: `Aggregates the per-task rows of the practice platform's "Detailed
Progress" XLSX export into per-assignment point totals, validates them
against the assignment rubric, cross-checks the student roster against the
gradebook, and writes the totals into the matching gradebook columns.

The updated gradebook is written to a new CSV file suitable for re-import
into the LMS; the input files are never modified.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeRubricFile, "rubric", "r", "",
		"Rubric YAML mapping practice-platform tasks to gradebook assignments (default: embedded rubric)")
	mergeCmd.Flags().StringVarP(&mergeOutputFile, "output", "o", "",
		"Output filename (default: classgrade_merged_<timestamp>.csv)")
	mergeCmd.Flags().StringVar(&mergeDumpAccumulated, "dump-accumulated", "",
		"Also write the intermediate assignment-by-student point matrix to this CSV file")
	mergeCmd.Flags().BoolVar(&mergeKeepTestStudent, "keep-test-student", false,
		"Do not drop a trailing \"Student, Test\" row from the roster")
	mergeCmd.Flags().BoolVar(&mergeNoTaskCheck, "no-task-check", false,
		"Skip the check that each student's observed tasks exactly match the rubric's task list")
}

func runMerge(cmd *cobra.Command, args []string) error {
	progressFile, gradebookFile := args[0], args[1]

	rubric, err := config.LoadRubric(mergeRubricFile)
	if err != nil {
		return err
	}
	logger.Debug("rubric loaded",
		zap.String("path", mergeRubricFile),
		zap.Int("assignments", len(rubric.Assignments)))

	progressTable, err := table.ReadXLSX(progressFile)
	if err != nil {
		return err
	}
	rows, err := reconcile.ProgressFromTable(progressTable)
	if err != nil {
		return err
	}
	logger.Debug("progress export loaded",
		zap.String("path", progressFile),
		zap.Int("rows", len(rows)))

	accumulated, err := reconcile.Accumulate(logger, rows, rubric,
		reconcile.WithTaskSetCheck(!mergeNoTaskCheck))
	if err != nil {
		return err
	}

	if mergeDumpAccumulated != "" {
		if err := reconcile.DumpAccumulated(accumulated).SaveCSV(mergeDumpAccumulated); err != nil {
			return err
		}
		fmt.Printf("Accumulated points written to %s\n", mergeDumpAccumulated)
	}

	gb, err := table.LoadCSV(gradebookFile)
	if err != nil {
		return err
	}
	merged, err := reconcile.Merge(accumulated, gb, rubric,
		reconcile.WithKeepTestStudent(mergeKeepTestStudent))
	if err != nil {
		return err
	}

	output := mergeOutputFile
	if output == "" {
		output = fmt.Sprintf("classgrade_merged_%s.csv", time.Now().Format("2006_01_02-15_04_05"))
	}
	if err := merged.SaveCSV(output); err != nil {
		return err
	}
	fmt.Printf("Merged gradebook written to %s\n", output)
	return nil
}
