package render

import (
	"html/template"
	"io"

	"prospector/internal/domain"
)

// HTMLRenderer writes the project list as a standalone HTML table
type HTMLRenderer struct{}

var htmlTmpl = template.Must(template.New("projects").Parse(`<!DOCTYPE html>
<html>
<head><title>Projects</title></head>
<body>
<table>
<tr><th>Kinds</th><th>Name</th><th>Path</th></tr>
{{range .}}<tr><td>{{.KindList}}</td><td>{{.Name}}</td><td>{{.Path}}</td></tr>
{{end}}</table>
</body>
</html>
`))

func (r *HTMLRenderer) Render(w io.Writer, projects []domain.Project) error {
	return htmlTmpl.Execute(w, projects)
}
