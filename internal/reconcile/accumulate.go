// Package reconcile implements the rubric-driven reconciliation engine: it
// aggregates per-task completion rows into per-assignment point totals,
// validates the totals against the declared rubric, and merges them into the
// matching gradebook columns. Validation always completes before anything is
// written, so a failed run leaves the gradebook untouched.
package reconcile

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"classgrade/internal/config"
)

// Points is the accumulated result: assignment name -> student name -> earned
// points. Only assignments declared in the rubric appear.
type Points map[string]map[string]int

// Option adjusts accumulation policy.
type Option func(*options)

type options struct {
	taskSetCheck bool
}

// WithTaskSetCheck toggles the exhaustiveness check that every rubric task
// was actually observed for every student (and nothing beyond them). On by
// default; turning it off skips the check entirely rather than demoting it to
// a warning.
func WithTaskSetCheck(enabled bool) Option {
	return func(o *options) { o.taskSetCheck = enabled }
}

// record tallies one (assignment, student) pair during accumulation. regular
// and bonus count sub-parts seen, completed or not; they exist only to be
// checked against the rubric's declared totals afterwards.
type record struct {
	earned  int
	regular int
	bonus   int
	tasks   map[string]struct{}
}

// Accumulate walks the progress rows in input order, sums completed sub-parts
// per assignment per student, and validates every tally against the rubric.
// Rows whose task no rubric entry claims are skipped with a warning; the
// platform often carries content the instructor has not classified yet.
// Accumulation is commutative per key, so input order never affects the
// result.
func Accumulate(logger *zap.Logger, rows []Progress, rubric config.Rubric, opts ...Option) (Points, error) {
	o := options{taskSetCheck: true}
	for _, opt := range opts {
		opt(&o)
	}

	// Reverse lookup built once so each row resolves its assignment in O(1).
	// Sorted build order keeps the winner deterministic should two rubric
	// entries ever claim the same task.
	byTask := make(map[string]string)
	for _, assignment := range rubric.AssignmentNames() {
		for _, task := range rubric.Assignments[assignment].Tasks {
			if _, ok := byTask[task]; !ok {
				byTask[task] = assignment
			}
		}
	}

	records := make(map[string]map[string]*record)
	for _, row := range rows {
		task := Sanitize(row.Task)
		student := Sanitize(row.Student)

		assignment, ok := byTask[task]
		if !ok {
			logger.Warn("task not covered by any rubric entry, skipping row",
				zap.String("task", task),
				zap.String("student", student))
			continue
		}

		perStudent := records[assignment]
		if perStudent == nil {
			perStudent = make(map[string]*record)
			records[assignment] = perStudent
		}
		rec := perStudent[student]
		if rec == nil {
			rec = &record{tasks: make(map[string]struct{})}
			perStudent[student] = rec
		}

		if row.Completed {
			rec.earned++
		}
		switch sanitizeFold(row.Section) {
		case "wizard level", "wizard":
			rec.bonus++
		default:
			rec.regular++
		}
		rec.tasks[task] = struct{}{}
	}

	out := make(Points, len(rubric.Assignments))
	for _, assignment := range rubric.AssignmentNames() {
		decl := rubric.Assignments[assignment]
		out[assignment] = make(map[string]int, len(records[assignment]))
		for _, student := range sortedKeys(records[assignment]) {
			rec := records[assignment][student]
			if err := validateRecord(assignment, student, decl, rec, o); err != nil {
				return nil, err
			}
			out[assignment][student] = rec.earned
		}
	}
	return out, nil
}

// validateRecord checks one (assignment, student) tally against the rubric.
// Any mismatch means either a misconfigured rubric or a changed task set on
// the platform; partial credit for malformed data is never accepted.
func validateRecord(assignment, student string, decl config.Assignment, rec *record, o options) error {
	if o.taskSetCheck {
		expected := append([]string(nil), decl.Tasks...)
		sort.Strings(expected)
		found := make([]string, 0, len(rec.tasks))
		for task := range rec.tasks {
			found = append(found, task)
		}
		sort.Strings(found)
		if !equalStrings(expected, found) {
			return fmt.Errorf("%w: assignment %q, student %q:\n%s",
				ErrTaskSetMismatch, assignment, student,
				SideBySide(expected, found, "Expected", "Found"))
		}
	}

	if float64(rec.regular) != decl.Points {
		return fmt.Errorf("%w: assignment %q, student %q: found %d non-bonus sub-parts, rubric declares %g",
			ErrPointCountMismatch, assignment, student, rec.regular, decl.Points)
	}
	if float64(rec.bonus) != decl.Bonus {
		return fmt.Errorf("%w: assignment %q, student %q: found %d bonus sub-parts, rubric declares %g",
			ErrPointCountMismatch, assignment, student, rec.bonus, decl.Bonus)
	}

	// Unreachable once the counts above agree, but cheap to assert.
	if limit := decl.Points + decl.Bonus; float64(rec.earned) > limit {
		return fmt.Errorf("%w: assignment %q, student %q: earned %d, maximum is %g",
			ErrPointsExceeded, assignment, student, rec.earned, limit)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
