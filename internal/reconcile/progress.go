package reconcile

import (
	"fmt"
	"strconv"

	"classgrade/internal/table"
)

// Progress is one row of the practice-platform detailed-progress export: a
// single sub-part ("Section") of a concept-builder task for one student.
type Progress struct {
	Task      string
	Student   string
	Section   string
	Completed bool
}

// ProgressFromTable converts a raw progress table into typed rows. The export
// must carry Task, Student, Section, and Completed columns; Completed must be
// boolean-valued. Name sanitization happens later, during accumulation.
func ProgressFromTable(t *table.Table) ([]Progress, error) {
	cols := make(map[string]int, 4)
	for _, name := range []string{"Task", "Student", "Section", "Completed"} {
		idx, ok := t.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf("progress export has no %q column", name)
		}
		cols[name] = idx
	}

	rows := make([]Progress, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		completed, err := strconv.ParseBool(Sanitize(t.Cell(i, cols["Completed"])))
		if err != nil {
			// Row numbering matches the spreadsheet: header is row 1.
			return nil, fmt.Errorf("progress export row %d: Completed is not boolean: %w", i+2, err)
		}
		rows = append(rows, Progress{
			Task:      t.Cell(i, cols["Task"]),
			Student:   t.Cell(i, cols["Student"]),
			Section:   t.Cell(i, cols["Section"]),
			Completed: completed,
		})
	}
	return rows, nil
}
