package markdown

import (
	"strings"
	"testing"
)

func TestRender_BasicMarkdown(t *testing.T) {
	r := New()

	got, err := r.Render("# Title\n\nsome *emphasis* here")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, "<h1 id=\"title\">Title</h1>") {
		t.Fatalf("missing heading in %q", got)
	}
	if !strings.Contains(got, "<em>emphasis</em>") {
		t.Fatalf("missing emphasis in %q", got)
	}
}

func TestRender_GFMTable(t *testing.T) {
	r := New()

	got, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "<table>") {
		t.Fatalf("GFM tables should render, got %q", got)
	}
}

func TestRender_FencedCodeIsHighlighted(t *testing.T) {
	r := New()

	got, err := r.Render("```go\npackage main\n```")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "class=") {
		t.Fatalf("highlighting should emit classed spans, got %q", got)
	}
}

func TestRender_RawHTMLDroppedByDefault(t *testing.T) {
	r := New()

	got, err := r.Render("before\n\n<script>alert(1)</script>\n\nafter")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("raw HTML should not pass through by default, got %q", got)
	}
}

func TestRender_SanitizerStripsScripts(t *testing.T) {
	r := New(WithUnsafeHTML(), WithSanitizer())

	got, err := r.Render("keep <b>bold</b>\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "script") {
		t.Fatalf("sanitizer should strip scripts, got %q", got)
	}
	if !strings.Contains(got, "<b>bold</b>") {
		t.Fatalf("sanitizer should keep benign markup, got %q", got)
	}
}
