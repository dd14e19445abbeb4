// Package markdown renders Markdown to HTML with goldmark: GitHub Flavored
// Markdown, chroma-backed syntax highlighting for fenced code blocks, and
// optional bluemonday sanitization of the output.
package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	style    string
	unsafe   bool
	sanitize bool
}

// WithStyle sets the chroma style used for fenced code blocks.
func WithStyle(style string) Option {
	return func(cfg *config) {
		if style != "" {
			cfg.style = style
		}
	}
}

// WithUnsafeHTML passes raw HTML blocks through instead of dropping them.
// Needed for content authored before a markup editor existed.
func WithUnsafeHTML() Option {
	return func(cfg *config) {
		cfg.unsafe = true
	}
}

// WithSanitizer runs the output through a bluemonday UGC policy. Combine
// with WithUnsafeHTML to allow authored HTML while still stripping scripts.
func WithSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitize = true
	}
}

// Renderer converts Markdown source to HTML. The zero value is not usable;
// construct with New.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New builds a renderer with GFM and syntax highlighting enabled.
func New(opts ...Option) *Renderer {
	cfg := &config{style: "github"}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	rendererOptions := []goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	}
	if cfg.unsafe {
		rendererOptions = append(rendererOptions,
			goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	r := &Renderer{md: goldmark.New(rendererOptions...)}
	if cfg.sanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// Render converts Markdown source to HTML. Usable directly as a
// markup.Converter via method value.
func (r *Renderer) Render(raw string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(raw), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	if r.policy != nil {
		return r.policy.Sanitize(buf.String()), nil
	}
	return buf.String(), nil
}
