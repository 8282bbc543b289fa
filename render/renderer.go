// Package render builds the HTML table fragments the list screens swap into
// the page.
package render

import (
	"fmt"
	"html"
	"strings"
)

// Column is one table column: a header and how to print a record's cell.
type Column[T any] struct {
	Header string
	Class  string
	Cell   func(T) string
}

// Text is a left-aligned column.
func Text[T any](header, class string, cell func(T) string) Column[T] {
	return Column[T]{Header: header, Class: class, Cell: cell}
}

// Right is a right-aligned column, for amounts and counts.
func Right[T any](header, class string, cell func(T) string) Column[T] {
	return Column[T]{Header: header, Class: "right " + class, Cell: cell}
}

// Center is a centered column, for dates and statuses.
func Center[T any](header, class string, cell func(T) string) Column[T] {
	return Column[T]{Header: header, Class: "center " + class, Cell: cell}
}

// RenderTableHTML prints rows as a <thead>/<tbody> pair. Every cell is
// HTML-escaped. rowID, when set, tags each row with data-id.
func RenderTableHTML[T any](columns []Column[T], rows []T, rowID func(T) int64, emptyMessage string) string {
	var sb strings.Builder

	sb.WriteString(`<thead><tr>`)
	for _, c := range columns {
		sb.WriteString(fmt.Sprintf(`<th class="%s">%s</th>`, html.EscapeString(strings.TrimSpace(c.Class)), html.EscapeString(c.Header)))
	}
	sb.WriteString(`</tr></thead>`)

	sb.WriteString(`<tbody>`)
	if len(rows) == 0 {
		sb.WriteString(fmt.Sprintf(`<tr><td colspan="%d">%s</td></tr>`, len(columns), html.EscapeString(emptyMessage)))
	}
	for _, row := range rows {
		if rowID != nil {
			sb.WriteString(fmt.Sprintf(`<tr data-id="%d">`, rowID(row)))
		} else {
			sb.WriteString(`<tr>`)
		}
		for _, c := range columns {
			sb.WriteString(fmt.Sprintf(`<td class="%s">%s</td>`, html.EscapeString(strings.TrimSpace(c.Class)), html.EscapeString(c.Cell(row))))
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody>`)

	return sb.String()
}
