// Package config assembles renderer registries from declarative
// configuration. Applications load a YAML document (or take the compiled-in
// default) at startup and inject the resulting registry into their field
// definitions; nothing here is discovered through global state.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-markupfield/pkg/markup"
	"github.com/goliatone/go-markupfield/pkg/renderers/markdown"
	"github.com/goliatone/go-markupfield/pkg/renderers/plain"
	"github.com/goliatone/go-markupfield/pkg/renderers/rest"
)

// Built-in renderer identifiers accepted by TypeConfig.Renderer.
const (
	RendererHTML     = "html"
	RendererPlain    = "plain"
	RendererMarkdown = "markdown"
	RendererReST     = "rest"
)

// Config declares the markup types an application supports and which
// built-in renderer backs each one.
type Config struct {
	DefaultMarkupType string                `yaml:"default_markup_type"`
	MarkupTypes       map[string]TypeConfig `yaml:"markup_types"`
}

// TypeConfig configures one markup type entry. Style, Sanitize, and
// UnsafeHTML only apply to the markdown renderer.
type TypeConfig struct {
	Renderer   string `yaml:"renderer"`
	Style      string `yaml:"style,omitempty"`
	Sanitize   bool   `yaml:"sanitize,omitempty"`
	UnsafeHTML bool   `yaml:"unsafe_html,omitempty"`
}

// Default returns the compiled-in configuration: an identity html type, a
// plain text type, GFM markdown, and reStructuredText.
func Default() *Config {
	return &Config{
		DefaultMarkupType: RendererPlain,
		MarkupTypes: map[string]TypeConfig{
			"html":     {Renderer: RendererHTML},
			"plain":    {Renderer: RendererPlain},
			"markdown": {Renderer: RendererMarkdown},
			"rest":     {Renderer: RendererReST},
		},
	}
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func (c *Config) validate() error {
	if len(c.MarkupTypes) == 0 {
		return fmt.Errorf("config: no markup types declared")
	}

	for _, name := range sortedNames(c.MarkupTypes) {
		tc := c.MarkupTypes[name]
		switch tc.Renderer {
		case RendererHTML, RendererPlain, RendererMarkdown, RendererReST:
		case "":
			return fmt.Errorf("config: markup type %q declares no renderer", name)
		default:
			return fmt.Errorf("config: markup type %q uses unknown renderer %q, valid renderers: %s",
				name, tc.Renderer, strings.Join(builtinRenderers(), ", "))
		}
	}

	if c.DefaultMarkupType != "" {
		if _, ok := c.MarkupTypes[c.DefaultMarkupType]; !ok {
			return fmt.Errorf("config: default markup type %q is not declared", c.DefaultMarkupType)
		}
	}
	return nil
}

// Registry builds the renderer registry the configuration declares.
func (c *Config) Registry() (*markup.Registry, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	reg := markup.NewRegistry()
	for _, name := range sortedNames(c.MarkupTypes) {
		tc := c.MarkupTypes[name]
		if err := reg.Register(name, buildRenderer(tc)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func buildRenderer(tc TypeConfig) markup.Renderer {
	switch tc.Renderer {
	case RendererPlain:
		return markup.Func(plain.Render)
	case RendererMarkdown:
		var opts []markdown.Option
		if tc.Style != "" {
			opts = append(opts, markdown.WithStyle(tc.Style))
		}
		if tc.Sanitize {
			opts = append(opts, markdown.WithSanitizer())
		}
		if tc.UnsafeHTML {
			opts = append(opts, markdown.WithUnsafeHTML())
		}
		return markup.Func(markdown.New(opts...).Render)
	case RendererReST:
		return markup.Rich(rest.NewDocument)
	default: // RendererHTML, already validated
		return markup.Func(func(raw string) (string, error) { return raw, nil })
	}
}

func builtinRenderers() []string {
	return []string{RendererHTML, RendererMarkdown, RendererPlain, RendererReST}
}

func sortedNames(types map[string]TypeConfig) []string {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
