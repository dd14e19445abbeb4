// Package rest renders reStructuredText through hhatto/gorst. Unlike the
// plain-function renderers it registers as a rich entry: field reads yield a
// Document view that owns its render step and adds ReST-specific helpers
// such as section title extraction.
package rest

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	rst "github.com/hhatto/gorst"

	"github.com/goliatone/go-markupfield/pkg/markup"
)

// Document is the rich accessor for reStructuredText fields. It embeds the
// base view, so raw text, markup type, and the rendered cache behave like
// any other markup value.
type Document struct {
	*markup.Markup
}

// NewDocument builds the rich view bound to a markup value. Register it with
// markup.Rich(rest.NewDocument).
func NewDocument(m *markup.Markup) markup.RichMarkup {
	return &Document{Markup: m}
}

// Render converts the document's raw text to HTML.
func (d *Document) Render() (string, error) {
	parser := rst.NewParser(nil)

	var buf bytes.Buffer
	parser.ReStructuredText(strings.NewReader(d.Raw()), rst.ToHTML(&buf))

	out := strings.TrimSpace(buf.String())
	if out == "" && strings.TrimSpace(d.Raw()) != "" {
		return "", fmt.Errorf("rest: no output for non-empty source")
	}
	return out, nil
}

// Title returns the document's first section title, or "" when the raw text
// has none.
func (d *Document) Title() string {
	lines := strings.Split(d.Raw(), "\n")
	for i := 0; i < len(lines)-1; i++ {
		title := strings.TrimSpace(lines[i])
		if title == "" || isAdornment(title) {
			continue
		}
		underline := strings.TrimRight(lines[i+1], " \t")
		if isAdornment(underline) && len(underline) >= len(title) {
			return title
		}
	}
	return ""
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Plaintext renders the document and strips the markup, yielding the text
// content alone.
func (d *Document) Plaintext() (string, error) {
	rendered, err := d.Render()
	if err != nil {
		return "", err
	}
	stripped := tagPattern.ReplaceAllString(rendered, "")
	return strings.TrimSpace(html.UnescapeString(stripped)), nil
}

// isAdornment reports whether the line is a ReST section adornment: at least
// two repeats of one punctuation character.
func isAdornment(line string) bool {
	if len(line) < 2 {
		return false
	}
	first := line[0]
	if !strings.ContainsRune("=-`:'\"~^_*+#<>.", rune(first)) {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != first {
			return false
		}
	}
	return true
}
