// Package gradebook understands the fixed shape of an LMS gradebook export:
// a Student column whose rows begin with metadata, then a "Points Possible"
// sentinel row, then the alphabetical student roster, optionally terminated
// by a "Student, Test" sentinel; assignment columns carry an LMS-appended
// numeric suffix and are matched by prefix.
package gradebook

import (
	"errors"
	"fmt"
	"strings"

	"classgrade/internal/table"
)

const (
	// StudentColumn is the header of the roster column.
	StudentColumn = "Student"
	// PointsPossibleSentinel is the exact Student-column value (leading
	// spaces included, as the LMS exports it) of the row holding each
	// column's declared point value.
	PointsPossibleSentinel = "    Points Possible"
	// TestStudentSentinel is the LMS's synthetic student, which trails the
	// roster when present and never receives grades.
	TestStudentSentinel = "Student, Test"
)

var (
	ErrNoPointsPossible = errors.New("gradebook has no Points Possible row")
	ErrColumnNotFound   = errors.New("no gradebook column matches assignment")
	ErrColumnAmbiguous  = errors.New("multiple gradebook columns match assignment")
)

// Roster is the real student roster of a gradebook export, with the body-row
// index of each student so writes can target exact rows.
type Roster struct {
	Names []string
	// RowIndexes[i] is the table body-row index of Names[i].
	RowIndexes []int
	// PointsPossibleRow is the body-row index of the sentinel row.
	PointsPossibleRow int
}

// ExtractRoster locates the Points Possible sentinel and returns the student
// rows strictly after it. A trailing test-student sentinel is dropped unless
// keepTestStudent is set; its row remains in the table either way and is
// simply never written to.
func ExtractRoster(t *table.Table, keepTestStudent bool) (Roster, error) {
	students, err := t.Column(StudentColumn)
	if err != nil {
		return Roster{}, err
	}
	sentinel := -1
	for i, s := range students {
		if s == PointsPossibleSentinel {
			sentinel = i
			break
		}
	}
	if sentinel < 0 {
		return Roster{}, fmt.Errorf("%w (expected Student cell %q)", ErrNoPointsPossible, PointsPossibleSentinel)
	}

	r := Roster{PointsPossibleRow: sentinel}
	for i := sentinel + 1; i < len(students); i++ {
		r.Names = append(r.Names, students[i])
		r.RowIndexes = append(r.RowIndexes, i)
	}
	if !keepTestStudent && len(r.Names) > 0 && r.Names[len(r.Names)-1] == TestStudentSentinel {
		r.Names = r.Names[:len(r.Names)-1]
		r.RowIndexes = r.RowIndexes[:len(r.RowIndexes)-1]
	}
	return r, nil
}

// MatchColumn finds the single gradebook column whose header starts with the
// assignment name. Zero matches means the rubric references an assignment the
// gradebook does not carry; more than one means the assignment name is too
// short to identify a column. Both are configuration errors.
func MatchColumn(t *table.Table, assignment string) (int, error) {
	var matches []int
	var names []string
	for i, h := range t.Headers {
		if strings.HasPrefix(h, assignment) {
			matches = append(matches, i)
			names = append(names, h)
		}
	}
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, assignment)
	case 1:
		return matches[0], nil
	default:
		return 0, fmt.Errorf("%w: %q matches columns %q", ErrColumnAmbiguous, assignment, names)
	}
}
