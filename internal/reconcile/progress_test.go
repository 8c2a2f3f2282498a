package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classgrade/internal/table"
)

func TestProgressFromTable(t *testing.T) {
	tbl := table.New("Student", "Task", "Section", "Completed", "Extra")
	tbl.AppendRow("Alice", "T1", "Regular", "TRUE", "x")
	tbl.AppendRow("Bob", "T1", "Wizard Level", "false", "")

	rows, err := ProgressFromTable(tbl)
	require.NoError(t, err)

	want := []Progress{
		{Task: "T1", Student: "Alice", Section: "Regular", Completed: true},
		{Task: "T1", Student: "Bob", Section: "Wizard Level", Completed: false},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("parsed rows mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressFromTable_MissingColumn(t *testing.T) {
	tbl := table.New("Student", "Task", "Completed")
	_, err := ProgressFromTable(tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Section")
}

func TestProgressFromTable_BadBool(t *testing.T) {
	tbl := table.New("Student", "Task", "Section", "Completed")
	tbl.AppendRow("Alice", "T1", "Regular", "maybe")

	_, err := ProgressFromTable(tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Name That Motion", Sanitize(" \u200bName That\u200b Motion \u200b"))
	assert.Equal(t, "wizard level", sanitizeFold(" Wizard Level\u200b"))
}
