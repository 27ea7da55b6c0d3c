package render

import (
	"fmt"
	"io"
	"strings"

	"prospector/internal/domain"
)

// MarkdownRenderer writes the project list as a column-aligned Markdown table
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, projects []domain.Project) error {
	if _, err := fmt.Fprintf(w, "# Projects\n\n"); err != nil {
		return err
	}

	rows := [][3]string{{"Kinds", "Name", "Path"}}
	for _, p := range projects {
		rows = append(rows, [3]string{p.KindList(), p.Name(), p.Path})
	}

	var widths [3]int
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for rowID, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
		if rowID == 0 {
			seps := make([]string, len(cells))
			for i := range cells {
				seps[i] = strings.Repeat("-", widths[i])
			}
			if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | ")); err != nil {
				return err
			}
		}
	}
	return nil
}
