package finalgrades

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRender(t *testing.T) {
	rep := NewReport("Student", "Grade")
	rep.AddRow("Aardvark, Alice", "92.50")
	rep.AddRow("Bobcat, Bob", "75.00")

	out := rep.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "Student")
	assert.Contains(t, lines[1], "-------")
	assert.Contains(t, lines[2], "Aardvark, Alice")
	assert.Contains(t, lines[3], "75.00")
}

func TestReportAddRow_PadsShortRows(t *testing.T) {
	rep := NewReport("Student", "Grade", "Letter")
	rep.AddRow("Alice")
	assert.Equal(t, []string{"Alice", "", ""}, rep.Rows[0])
}

func TestFormatResults(t *testing.T) {
	out := FormatResults([]Result{
		{Student: "Aardvark, Alice", Grade: 92.5, Letter: "A-"},
		{Student: "Bobcat, Bob", Grade: 75, Letter: "C"},
	})
	assert.Contains(t, out, "92.50")
	assert.Contains(t, out, "75.00")
	assert.Contains(t, out, "A-")
	assert.Contains(t, out, "Bobcat, Bob")
}
