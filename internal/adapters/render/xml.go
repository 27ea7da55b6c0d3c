package render

import (
	"encoding/xml"
	"io"
	"time"

	"prospector/internal/domain"
)

// XMLRenderer writes the project list as an XML document
type XMLRenderer struct{}

type xmlProject struct {
	Path         string   `xml:"path"`
	Name         string   `xml:"name"`
	Kinds        []string `xml:"kinds>kind"`
	LastVerified string   `xml:"last_verified"`
}

type xmlProjects struct {
	XMLName  xml.Name     `xml:"projects"`
	Projects []xmlProject `xml:"project"`
}

func (r *XMLRenderer) Render(w io.Writer, projects []domain.Project) error {
	doc := xmlProjects{Projects: make([]xmlProject, 0, len(projects))}
	for _, p := range projects {
		doc.Projects = append(doc.Projects, xmlProject{
			Path:         p.Path,
			Name:         p.Name(),
			Kinds:        p.Kinds,
			LastVerified: p.LastVerified.Format(time.RFC3339),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
