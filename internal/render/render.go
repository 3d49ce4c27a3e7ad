// Package render turns an assembled resume into a shareable document.
//
// Each supported layout is an embedded HTML template. Rendering is a pure
// data-to-markup transform: the template receives a [models.Resume] and
// produces a standalone HTML file that prints cleanly to one page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// TemplateNames lists the supported resume layouts in menu order.
var TemplateNames = []string{"modern", "professional", "ats"}

// Renderer renders resumes into HTML documents on disk.
type Renderer struct {
	templates *template.Template

	// outputDir is where rendered files land. Defaults to the working
	// directory when empty.
	outputDir string
}

// New parses the embedded layout templates and returns a Renderer writing
// into outputDir.
func New(outputDir string) (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse resume templates: %w", err)
	}

	return &Renderer{templates: templates, outputDir: outputDir}, nil
}

// Render executes the named layout template over resume and returns the
// resulting HTML document. Unknown template names fall back to "modern".
func (r *Renderer) Render(resume any, templateName string) (string, error) {
	name := templateName
	if !knownTemplate(name) {
		name = "modern"
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name+".gohtml", resume); err != nil {
		return "", fmt.Errorf("render resume with %q template: %w", name, err)
	}

	return buf.String(), nil
}

// RenderToFile renders resume with the named layout and writes the document
// to the renderer's output directory. The file name carries the candidate's
// name and a timestamp so repeated downloads never overwrite each other.
// Returns the full path of the written file.
func (r *Renderer) RenderToFile(resume any, templateName, candidateName string) (string, error) {
	doc, err := r.Render(resume, templateName)
	if err != nil {
		return "", err
	}

	dir := r.outputDir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve output directory: %w", err)
		}
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, fileName(candidateName))
	if err = os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("write resume file: %w", err)
	}

	return path, nil
}

func knownTemplate(name string) bool {
	for _, known := range TemplateNames {
		if known == name {
			return true
		}
	}
	return false
}

func fileName(candidateName string) string {
	slug := strings.ToLower(strings.TrimSpace(candidateName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "resume"
	}
	return fmt.Sprintf("%s-%s.html", slug, time.Now().Format("20060102-150405"))
}
