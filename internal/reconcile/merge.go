package reconcile

import (
	"fmt"
	"sort"
	"strconv"

	"classgrade/internal/config"
	"classgrade/internal/gradebook"
	"classgrade/internal/table"
)

// MergeOption adjusts merge behavior.
type MergeOption func(*mergeOptions)

type mergeOptions struct {
	keepTestStudent bool
}

// WithKeepTestStudent keeps a trailing "Student, Test" row in the roster used
// for matching. Only useful if a real student happens to carry that name.
func WithKeepTestStudent(keep bool) MergeOption {
	return func(o *mergeOptions) { o.keepTestStudent = keep }
}

// plannedWrite is one validated column fill, held back until every
// assignment has passed validation.
type plannedWrite struct {
	col    int
	values []int
}

// Merge writes accumulated points into the matching gradebook columns and
// returns the updated table. For every rubric assignment it first
// cross-checks the accumulated students against the gradebook roster, locates
// the destination column by prefix, and verifies the column's Points Possible
// value against the rubric; only when every assignment validates does any
// cell change, so a failure guarantees zero side effects on the table.
func Merge(accumulated Points, gb *table.Table, rubric config.Rubric, opts ...MergeOption) (*table.Table, error) {
	var o mergeOptions
	for _, opt := range opts {
		opt(&o)
	}

	roster, err := gradebook.ExtractRoster(gb, o.keepTestStudent)
	if err != nil {
		return nil, err
	}

	var plan []plannedWrite
	for _, assignment := range rubric.AssignmentNames() {
		perStudent := accumulated[assignment]

		students := make([]string, 0, len(perStudent))
		for s := range perStudent {
			students = append(students, s)
		}
		sort.Strings(students)

		// The gradebook export lists students alphabetically, so the two
		// sorted rosters must agree element for element.
		if !equalStrings(students, roster.Names) {
			return nil, fmt.Errorf("%w: assignment %q:\n%s",
				ErrRosterMismatch, assignment,
				SideBySide(students, roster.Names, "Accumulated", "Gradebook"))
		}

		col, err := gradebook.MatchColumn(gb, assignment)
		if err != nil {
			return nil, err
		}

		declaredCell := Sanitize(gb.Cell(roster.PointsPossibleRow, col))
		declared, err := strconv.ParseFloat(declaredCell, 64)
		if err != nil {
			return nil, fmt.Errorf("gradebook Points Possible for %q is not numeric (%q): %w",
				assignment, declaredCell, err)
		}
		if declared != rubric.Assignments[assignment].Points {
			return nil, fmt.Errorf("%w: gradebook shows %q worth %g, rubric declares %g",
				ErrPointsDrift, assignment, declared, rubric.Assignments[assignment].Points)
		}

		values := make([]int, len(roster.Names))
		for i, name := range roster.Names {
			values[i] = perStudent[name]
		}
		plan = append(plan, plannedWrite{col: col, values: values})
	}

	for _, w := range plan {
		for i, row := range roster.RowIndexes {
			gb.SetCell(row, w.col, strconv.Itoa(w.values[i]))
		}
	}
	return gb, nil
}

// DumpAccumulated renders the intermediate accumulated matrix as a table:
// one row per student, one column per assignment, for inspection before or
// alongside a merge.
func DumpAccumulated(accumulated Points) *table.Table {
	assignments := sortedKeys(accumulated)

	studentSet := make(map[string]struct{})
	for _, perStudent := range accumulated {
		for s := range perStudent {
			studentSet[s] = struct{}{}
		}
	}
	students := sortedKeys(studentSet)

	t := table.New(append([]string{"Student"}, assignments...)...)
	for _, student := range students {
		row := make([]string, 0, len(assignments)+1)
		row = append(row, student)
		for _, assignment := range assignments {
			if pts, ok := accumulated[assignment][student]; ok {
				row = append(row, strconv.Itoa(pts))
			} else {
				row = append(row, "")
			}
		}
		t.AppendRow(row...)
	}
	return t
}
