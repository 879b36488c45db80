package parser

import (
	"regexp"
	"strings"

	"app/models"
)

// tableRe matches one markdown pipe-table: a header row, a dash/colon
// separator row, and one or more body rows.
var tableRe = regexp.MustCompile(`(?m)^\|[^\n]*\|[ \t]*\n\|[ \t:|-]+\|[ \t]*\n(?:\|[^\n]*\|[ \t]*\n?)+`)

// tableStage captures the first pipe-table in the text, verbatim.
func tableStage(r *models.ParsedResponse, text string) (string, interface{}) {
	loc := tableRe.FindStringIndex(text)
	if loc == nil {
		return text, nil
	}

	block := strings.Split(strings.TrimSpace(text[loc[0]:loc[1]]), "\n")
	if len(block) < 3 {
		return text, nil
	}

	table := &models.TableData{Headers: splitTableRow(block[0])}
	for _, row := range block[2:] {
		if cells := splitTableRow(row); len(cells) > 0 {
			table.Rows = append(table.Rows, cells)
		}
	}
	if len(table.Headers) == 0 || len(table.Rows) == 0 {
		return text, nil
	}

	r.TableData = table
	return text[:loc[0]] + text[loc[1]:], table
}

// splitTableRow splits on pipes, trims cells, and drops the empty leading
// and trailing cells produced by the outer pipes.
func splitTableRow(row string) []string {
	parts := strings.Split(row, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
