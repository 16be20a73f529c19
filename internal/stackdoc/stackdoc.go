// Package stackdoc ships the recommended-stack document for the full
// banking application and renders it for terminal display.
//
// The document is advisory prose: it names the API framework, ORM,
// identity provider, object storage, and deployment targets proposed for
// the real product. Nothing in it is implemented by this repository.
package stackdoc

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"
)

//go:embed stack.md
var raw string

// Meta is the YAML front matter at the top of stack.md.
type Meta struct {
	Title   string `yaml:"title"`
	Status  string `yaml:"status"`
	Updated string `yaml:"updated"`
}

const frontMatterDelim = "---"

// Parse splits the embedded document into its front matter and markdown
// body. A document without front matter is returned whole with an empty
// Meta.
func Parse() (Meta, string, error) {
	var meta Meta

	trimmed := strings.TrimLeft(raw, "\n")
	if !strings.HasPrefix(trimmed, frontMatterDelim+"\n") {
		return meta, raw, nil
	}

	rest := strings.TrimPrefix(trimmed, frontMatterDelim+"\n")
	idx := strings.Index(rest, "\n"+frontMatterDelim+"\n")
	if idx < 0 {
		return meta, raw, fmt.Errorf("unterminated front matter in stack.md")
	}

	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return meta, raw, fmt.Errorf("failed to parse stack.md front matter: %w", err)
	}

	body := strings.TrimLeft(rest[idx+len(frontMatterDelim)+2:], "\n")
	return meta, body, nil
}

// Body returns the markdown body without front matter.
func Body() (string, error) {
	_, body, err := Parse()
	return body, err
}

// Render renders the document body for the terminal at the given word-wrap
// width. Width 0 falls back to 80 columns.
func Render(width int, dark bool) (string, error) {
	_, body, err := Parse()
	if err != nil {
		return "", err
	}

	if width <= 0 {
		width = 80
	}

	var renderer *glamour.TermRenderer
	if dark {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
	} else {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(width),
		)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(body)
	if err != nil {
		return "", fmt.Errorf("failed to render stack document: %w", err)
	}
	return out, nil
}
