package ports

import (
	"io"

	"prospector/internal/domain"
)

// Renderer serializes a project list to an output stream. One implementation
// exists per output format; the discovery engine itself knows nothing about
// formats.
type Renderer interface {
	Render(w io.Writer, projects []domain.Project) error
}
