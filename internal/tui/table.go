package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table prints rows under a bold title. An empty row set prints a notice
// instead of an empty grid.
func (c *Console) Table(title string, header []string, rows [][]string) {
	fmt.Fprintln(c.out, RenderTable(title, header, rows))
}

// RenderTable returns what Table prints, without the trailing newline.
func RenderTable(title string, header []string, rows [][]string) string {
	if len(rows) == 0 {
		return warnStyle.Render("No data to display")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderColor).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}
	b.WriteString(t.String())
	return b.String()
}

// RowsFromMaps turns records into a header and rows. Columns are the keys
// of the first record in sorted order; values missing from later records
// render empty and keys absent from the first record are ignored.
func RowsFromMaps(records []map[string]any) ([]string, [][]string) {
	if len(records) == 0 {
		return nil, nil
	}
	header := make([]string, 0, len(records[0]))
	for k := range records[0] {
		header = append(header, k)
	}
	slices.Sort(header)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = formatValue(rec[k])
		}
		rows = append(rows, row)
	}
	return header, rows
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
