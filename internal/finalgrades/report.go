package finalgrades

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report renders static rows as right-aligned columns with a dashed header
// rule, sized to the widest cell per column.
type Report struct {
	Headers []string
	Rows    [][]string

	headerStyle lipgloss.Style
	ruleStyle   lipgloss.Style
}

// NewReport creates an empty report with the given headers.
func NewReport(headers ...string) *Report {
	return &Report{
		Headers:     headers,
		headerStyle: lipgloss.NewStyle().Bold(true),
		ruleStyle:   lipgloss.NewStyle().Faint(true),
	}
}

// AddRow appends one row; short rows are padded with empty cells.
func (r *Report) AddRow(cells ...string) {
	row := make([]string, len(r.Headers))
	copy(row, cells)
	r.Rows = append(r.Rows, row)
}

// Render produces the aligned textual table.
func (r *Report) Render() string {
	widths := make([]int, len(r.Headers))
	for i, h := range r.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range r.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	headers := make([]string, len(r.Headers))
	rules := make([]string, len(r.Headers))
	for i, h := range r.Headers {
		headers[i] = r.headerStyle.Render(fmt.Sprintf("%*s", widths[i], h))
		rules[i] = r.ruleStyle.Render(fmt.Sprintf("%*s", widths[i], strings.Repeat("-", lipgloss.Width(h))))
	}
	b.WriteString(strings.Join(headers, " "))
	b.WriteString("\n")
	b.WriteString(strings.Join(rules, " "))

	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%*s", widths[i], cell)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, " "))
	}
	return b.String()
}

// FormatResults renders computed final grades as a Student/Grade/Letter
// report, grades rounded to two decimals.
func FormatResults(results []Result) string {
	rep := NewReport("Student", "Grade", "Letter")
	for _, res := range results {
		rep.AddRow(res.Student, fmt.Sprintf("%.2f", res.Grade), res.Letter)
	}
	return rep.Render()
}
