package table

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV_PadsShortRows(t *testing.T) {
	in := "Student,HW1 (123),HW2 (456)\n\"    Points Possible\",12,10\n\"Aardvark, Alice\",3\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Student", "HW1 (123)", "HW2 (456)"}, tbl.Headers)
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "", tbl.Cell(1, 2), "short row should be padded to header width")
	assert.Equal(t, "Aardvark, Alice", tbl.Cell(1, 0))
}

func TestReadCSV_NoHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	tbl := New("Student", "HW1 (123)")
	tbl.AppendRow("    Points Possible", "12")
	tbl.AppendRow("Aardvark, Alice", "10")

	var b strings.Builder
	require.NoError(t, tbl.WriteCSV(&b))

	back, err := ReadCSV(strings.NewReader(b.String()))
	require.NoError(t, err)
	if diff := cmp.Diff(tbl, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnAndCells(t *testing.T) {
	tbl := New("Student", "Score")
	tbl.AppendRow("Aardvark, Alice", "3")
	tbl.AppendRow("Bobcat, Bob", "1")

	idx, ok := tbl.ColumnIndex("Score")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = tbl.ColumnIndex("Nope")
	assert.False(t, ok)

	col, err := tbl.Column("Student")
	require.NoError(t, err)
	assert.Equal(t, []string{"Aardvark, Alice", "Bobcat, Bob"}, col)

	_, err = tbl.Column("Nope")
	assert.Error(t, err)

	tbl.SetCell(1, 1, "4")
	assert.Equal(t, "4", tbl.Cell(1, 1))
}

func TestSaveLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.csv")

	tbl := New("Student", "HW1 (123)")
	tbl.AppendRow("Aardvark, Alice", "3")
	require.NoError(t, tbl.SaveCSV(path))

	back, err := LoadCSV(path)
	require.NoError(t, err)
	if diff := cmp.Diff(tbl, back); diff != "" {
		t.Errorf("disk round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCSV_Missing(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Task", "Student", "Section", "Completed"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Name That Motion", "Aardvark, Alice", "Apprentice", "TRUE"}))
	// Trailing empty cells are omitted by the writer, exercising row padding.
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Name That Motion", "Bobcat, Bob"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Task", "Student", "Section", "Completed"}, tbl.Headers)
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "TRUE", tbl.Cell(0, 3))
	assert.Equal(t, "", tbl.Cell(1, 3))
}

func TestReadXLSX_Missing(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
