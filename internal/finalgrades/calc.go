// Package finalgrades computes overall course grades from an already-merged
// gradebook: per-unit scores are clamped to a ceiling and averaged, then
// mapped to letters through configured cutoffs.
package finalgrades

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"classgrade/internal/config"
	"classgrade/internal/gradebook"
	"classgrade/internal/reconcile"
	"classgrade/internal/table"
)

var (
	// ErrScoreDisagreement means a unit's Final Score and Current Score
	// columns differ in a way other than the tolerated ungraded-unit
	// pattern. The two agree once grading is complete; disagreement signals
	// an unresolved regrade or a racing export.
	ErrScoreDisagreement = errors.New("Final Score disagrees with Current Score")
	// ErrGradeNotCovered means no configured cutoff accepts the grade.
	ErrGradeNotCovered = errors.New("grade not covered by configured letter minimums")
)

// Result is one student's computed final grade.
type Result struct {
	Student string
	Grade   float64
	Letter  string
}

// Option adjusts grade calculation.
type Option func(*options)

type options struct {
	ceiling         float64
	keepTestStudent bool
}

// WithCeiling sets the per-unit score clamp applied before averaging.
// Defaults to 100; scores above it (extra credit) do not inflate the mean.
func WithCeiling(c float64) Option {
	return func(o *options) { o.ceiling = c }
}

// WithKeepTestStudent includes a trailing "Student, Test" row in the report.
func WithKeepTestStudent(keep bool) Option {
	return func(o *options) { o.keepTestStudent = keep }
}

// Calc reads each roster student's per-unit Final Score columns, validates
// them against the Current Score columns, and returns the mean of the clamped
// unit scores per student, in roster order. Letters are not assigned here;
// see AssignLetters.
func Calc(logger *zap.Logger, gb *table.Table, cfg config.FinalGrades, opts ...Option) ([]Result, error) {
	o := options{ceiling: 100}
	for _, opt := range opts {
		opt(&o)
	}

	roster, err := gradebook.ExtractRoster(gb, o.keepTestStudent)
	if err != nil {
		return nil, err
	}

	type unitCols struct{ final, current int }
	cols := make(map[string]unitCols, len(cfg.Units))
	for _, unit := range cfg.Units {
		fc, ok := gb.ColumnIndex(unit + " Final Score")
		if !ok {
			return nil, fmt.Errorf("gradebook has no %q column", unit+" Final Score")
		}
		cc, ok := gb.ColumnIndex(unit + " Current Score")
		if !ok {
			return nil, fmt.Errorf("gradebook has no %q column", unit+" Current Score")
		}
		cols[unit] = unitCols{final: fc, current: cc}
	}

	results := make([]Result, 0, len(roster.Names))
	for i, student := range roster.Names {
		// ExtractRoster only drops a trailing test student; the report
		// skips the sentinel wherever it appears.
		if !o.keepTestStudent && student == gradebook.TestStudentSentinel {
			continue
		}
		row := roster.RowIndexes[i]

		var sum float64
		for _, unit := range cfg.Units {
			final, err := parseScore(gb.Cell(row, cols[unit].final))
			if err != nil {
				return nil, fmt.Errorf("unit %q, student %q: Final Score: %w", unit, student, err)
			}
			current, err := parseScore(gb.Cell(row, cols[unit].current))
			if err != nil {
				return nil, fmt.Errorf("unit %q, student %q: Current Score: %w", unit, student, err)
			}

			if final == 0 && math.IsNaN(current) {
				// An ungraded unit exports as final 0, current empty.
				logger.Warn("Current Score empty, unit likely ungraded",
					zap.String("unit", unit),
					zap.String("student", student))
			} else if final != current {
				return nil, fmt.Errorf("%w: unit %q, student %q: final %g, current %g",
					ErrScoreDisagreement, unit, student, final, current)
			}

			if final > o.ceiling {
				final = o.ceiling
			}
			sum += final
		}
		results = append(results, Result{
			Student: student,
			Grade:   sum / float64(len(cfg.Units)),
		})
	}
	return results, nil
}

// LetterFor maps a numeric grade to the first configured cutoff it meets or
// exceeds. The cutoffs are sorted descending, so the first hit is the highest
// letter the grade earns.
func LetterFor(grade float64, cfg config.FinalGrades) (string, error) {
	for _, gm := range cfg.GradeMinimums {
		if grade >= gm.Min {
			return gm.Letter, nil
		}
	}
	return "", fmt.Errorf("%w: %g", ErrGradeNotCovered, grade)
}

// AssignLetters fills the Letter field of each result in place.
func AssignLetters(results []Result, cfg config.FinalGrades) error {
	for i := range results {
		letter, err := LetterFor(results[i].Grade, cfg)
		if err != nil {
			return fmt.Errorf("student %q: %w", results[i].Student, err)
		}
		results[i].Letter = letter
	}
	return nil
}

// parseScore interprets a gradebook score cell. Empty and "NaN" cells both
// mean not-a-number; anything else must parse as a float.
func parseScore(cell string) (float64, error) {
	s := reconcile.Sanitize(cell)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not numeric (%q)", cell)
	}
	return v, nil
}
