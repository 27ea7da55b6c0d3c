package render

import (
	"fmt"
	"io"

	"prospector/internal/domain"
)

// TextRenderer writes a human readable list, one project per line
type TextRenderer struct{}

func (r *TextRenderer) Render(w io.Writer, projects []domain.Project) error {
	for _, p := range projects {
		if _, err := fmt.Fprintf(w, "%s  [%s]\n", p.Path, p.KindList()); err != nil {
			return err
		}
	}
	return nil
}
