package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-markupfield/pkg/field"
	"github.com/goliatone/go-markupfield/pkg/markup"
)

type post struct {
	key     string
	body    *markup.Slots
	summary *markup.Slots

	bodyField    *field.Field
	summaryField *field.Field
}

func (p *post) Key() string     { return p.key }
func (p *post) SetKey(k string) { p.key = k }

func (p *post) Bindings() []field.Binding {
	return []field.Binding{
		p.bodyField.Bind(p.body),
		p.summaryField.Bind(p.summary),
	}
}

func newPost(t *testing.T) *post {
	t.Helper()

	reg := markup.NewRegistry()
	reg.MustRegister("html", markup.Func(func(raw string) (string, error) { return raw, nil }))
	reg.MustRegister("shout", markup.Func(func(raw string) (string, error) {
		return "<p>" + strings.ToUpper(raw) + "</p>", nil
	}))

	bodyField := field.MustNew("body", reg, field.WithDefaultType("shout"))
	summaryField := field.MustNew("summary", reg, field.WithType("html"))

	return &post{
		body:         bodyField.NewSlots(),
		summary:      summaryField.NewSlots(),
		bodyField:    bodyField,
		summaryField: summaryField,
	}
}

func TestSave_RendersAndStoresColumns(t *testing.T) {
	s := New()
	p := newPost(t)

	p.bodyField.Set(p.body, "hello")
	p.summaryField.Set(p.summary, "<b>sum</b>")

	key, err := s.Save(context.Background(), p)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key == "" {
		t.Fatal("save should assign a key")
	}
	if p.Key() != key {
		t.Fatal("assigned key should reach the record")
	}

	if p.body.Rendered != "<p>HELLO</p>" {
		t.Fatalf("body cache not refreshed: %q", p.body.Rendered)
	}

	row, ok := s.Row(key)
	if !ok {
		t.Fatal("row should exist")
	}
	want := map[string]string{
		"body":                "hello",
		"body_markup_type":    "shout",
		"_body_rendered":      "<p>HELLO</p>",
		"summary":             "<b>sum</b>",
		"summary_markup_type": "html",
		"_summary_rendered":   "<b>sum</b>",
	}
	for column, value := range want {
		if row[column] != value {
			t.Fatalf("column %q: want %q, got %q", column, value, row[column])
		}
	}
}

func TestSave_InvalidTypeAbortsBeforeAnyMutation(t *testing.T) {
	s := New()
	p := newPost(t)

	p.bodyField.Set(p.body, "fine")
	p.summaryField.Set(p.summary, "fine too")
	markup.New(p.summary).SetMarkupType("textile")

	_, err := s.Save(context.Background(), p)

	var typeErr *markup.InvalidTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}

	// Even the valid first field must not have been touched.
	if p.body.Rendered != "" {
		t.Fatalf("no slot may be mutated on a failed save, body cache = %q", p.body.Rendered)
	}
	if len(s.Keys()) != 0 {
		t.Fatal("nothing may be stored on a failed save")
	}
}

func TestSave_RendererErrorAbortsBeforeAnyMutation(t *testing.T) {
	s := New()
	p := newPost(t)

	reg := p.summaryField.Registry()
	reg.MustRegister("broken", markup.Func(func(string) (string, error) {
		return "", errors.New("renderer down")
	}))

	p.bodyField.Set(p.body, "fine")
	p.summaryField.Set(p.summary, "boom")
	markup.New(p.summary).SetMarkupType("broken")

	_, err := s.Save(context.Background(), p)
	if err == nil || !strings.Contains(err.Error(), "renderer down") {
		t.Fatalf("renderer error should propagate, got %v", err)
	}

	// The first field rendered fine, but its cache must still be untouched.
	if p.body.Rendered != "" {
		t.Fatalf("no slot may be mutated on a failed save, body cache = %q", p.body.Rendered)
	}
	if len(s.Keys()) != 0 {
		t.Fatal("nothing may be stored on a failed save")
	}
}

func TestSave_KeepsExistingKey(t *testing.T) {
	s := New()
	p := newPost(t)
	p.key = "post-1"
	p.bodyField.Set(p.body, "x")
	p.summaryField.Set(p.summary, "y")

	key, err := s.Save(context.Background(), p)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key != "post-1" {
		t.Fatalf("existing key should be kept, got %q", key)
	}
}

func TestSave_CancelledContext(t *testing.T) {
	s := New()
	p := newPost(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Save(ctx, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	s := New()
	p := newPost(t)
	p.bodyField.Set(p.body, "hello")
	p.summaryField.Set(p.summary, "sum")

	key, err := s.Save(context.Background(), p)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := newPost(t)
	if err := s.Load(key, fresh); err != nil {
		t.Fatalf("load: %v", err)
	}

	acc, err := fresh.bodyField.Value(fresh.body)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if acc.Raw() != "hello" {
		t.Fatalf("raw round trip: %q", acc.Raw())
	}
	if acc.MarkupType() != "shout" {
		t.Fatalf("type round trip: %q", acc.MarkupType())
	}
	if acc.Rendered() != "<p>HELLO</p>" {
		t.Fatalf("rendered round trip: %q", acc.Rendered())
	}
}

func TestLoad_MissingRecord(t *testing.T) {
	s := New()

	if err := s.Load("nope", newPost(t)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAndKeys(t *testing.T) {
	s := New()
	p := newPost(t)
	p.key = "a"
	p.bodyField.Set(p.body, "x")
	p.summaryField.Set(p.summary, "y")

	if _, err := s.Save(context.Background(), p); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := s.Keys(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("keys: %v", got)
	}
	if !s.Delete("a") {
		t.Fatal("delete should report existing row")
	}
	if s.Delete("a") {
		t.Fatal("second delete should report missing row")
	}
}
