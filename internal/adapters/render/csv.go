package render

import (
	"encoding/csv"
	"io"
	"time"

	"prospector/internal/domain"
)

// CSVRenderer writes the project list as CSV with a header row
type CSVRenderer struct{}

func (r *CSVRenderer) Render(w io.Writer, projects []domain.Project) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"path", "name", "kinds", "last_verified"}); err != nil {
		return err
	}
	for _, p := range projects {
		record := []string{p.Path, p.Name(), p.KindList(), p.LastVerified.Format(time.RFC3339)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
