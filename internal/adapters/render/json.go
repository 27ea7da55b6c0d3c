package render

import (
	"encoding/json"
	"io"
	"time"

	"prospector/internal/domain"
)

// JSONRenderer writes the project list as a pretty-printed JSON array
type JSONRenderer struct{}

type jsonProject struct {
	Path         string    `json:"path"`
	Name         string    `json:"name"`
	Kinds        []string  `json:"kinds"`
	LastVerified time.Time `json:"last_verified"`
}

func (r *JSONRenderer) Render(w io.Writer, projects []domain.Project) error {
	out := make([]jsonProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, jsonProject{
			Path:         p.Path,
			Name:         p.Name(),
			Kinds:        p.Kinds,
			LastVerified: p.LastVerified,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
