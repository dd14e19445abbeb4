package plain

import "testing"

func TestRender_LinebreakComposition(t *testing.T) {
	got, err := Render("hello\nworld")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<p>hello<br>world</p>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestLinebreaks(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single paragraph",
			in:   "hello world",
			want: "<p>hello world</p>",
		},
		{
			name: "soft break",
			in:   "hello\nworld",
			want: "<p>hello<br>world</p>",
		},
		{
			name: "two paragraphs",
			in:   "first\n\nsecond",
			want: "<p>first</p>\n\n<p>second</p>",
		},
		{
			name: "windows newlines",
			in:   "first\r\n\r\nsecond",
			want: "<p>first</p>\n\n<p>second</p>",
		},
		{
			name: "extra blank lines collapse",
			in:   "first\n\n\n\nsecond",
			want: "<p>first</p>\n\n<p>second</p>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Linebreaks(tc.in); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestUrlize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "http url",
			in:   "see http://example.com today",
			want: `see <a href="http://example.com">http://example.com</a> today`,
		},
		{
			name: "https url",
			in:   "https://example.com/a/b",
			want: `<a href="https://example.com/a/b">https://example.com/a/b</a>`,
		},
		{
			name: "www host",
			in:   "visit www.example.com",
			want: `visit <a href="http://www.example.com">www.example.com</a>`,
		},
		{
			name: "email",
			in:   "mail me@example.com",
			want: `mail <a href="mailto:me@example.com">me@example.com</a>`,
		},
		{
			name: "trailing punctuation stays outside",
			in:   "go to http://example.com.",
			want: `go to <a href="http://example.com">http://example.com</a>.`,
		},
		{
			name: "url before closing tag",
			in:   "<p>http://example.com</p>",
			want: `<p><a href="http://example.com">http://example.com</a></p>`,
		},
		{
			name: "plain words untouched",
			in:   "nothing to link here",
			want: "nothing to link here",
		},
		{
			name: "existing markup untouched",
			in:   `<a href="http://x">x</a>`,
			want: `<a href="http://x">x</a>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Urlize(tc.in); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}
