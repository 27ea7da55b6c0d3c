package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"prospector/internal/domain"
)

func sampleProjects() []domain.Project {
	when := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	return []domain.Project{
		{Path: "/src/alpha", Kinds: []string{"go"}, LastVerified: when},
		{Path: "/src/beta", Kinds: []string{"rust", "node"}, LastVerified: when},
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New("yaml"); err == nil {
		t.Fatal("expected unknown format to fail")
	}
}

func TestNew_EmptyDefaultsToText(t *testing.T) {
	r, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := r.(*TextRenderer); !ok {
		t.Errorf("expected TextRenderer, got %T", r)
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextRenderer{}).Render(&buf, sampleProjects()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "/src/beta") || !strings.Contains(lines[1], "rust,node") {
		t.Errorf("unexpected line: %s", lines[1])
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONRenderer{}).Render(&buf, sampleProjects()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 2 || out[0]["path"] != "/src/alpha" {
		t.Errorf("unexpected output: %v", out)
	}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVRenderer{}).Render(&buf, sampleProjects()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[2][2] != "rust,node" {
		t.Errorf("unexpected kinds cell: %s", records[2][2])
	}
}

func TestXMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&XMLRenderer{}).Render(&buf, sampleProjects()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var doc xmlProjects
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if len(doc.Projects) != 2 || len(doc.Projects[1].Kinds) != 2 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownRenderer{}).Render(&buf, sampleProjects()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "| Kinds") || !strings.Contains(out, "/src/alpha") {
		t.Errorf("unexpected markdown:\n%s", out)
	}
	// Header separator row present
	if !strings.Contains(out, "| ---") {
		t.Errorf("missing separator row:\n%s", out)
	}
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	projects := sampleProjects()
	projects[0].Path = "/src/<evil>"

	if err := (&HTMLRenderer{}).Render(&buf, projects); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<evil>") {
		t.Error("path not HTML-escaped")
	}
	if !strings.Contains(out, "&lt;evil&gt;") {
		t.Errorf("expected escaped path in output:\n%s", out)
	}
}
