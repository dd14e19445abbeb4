// Package plain renders plain text to HTML: paragraphs from blank lines,
// <br> for single newlines, and bare URLs or email addresses wrapped in
// anchor tags. It is the default renderer for text authored without any
// markup language.
package plain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	paragraphSplit = regexp.MustCompile(`\n{2,}`)
	wordSplit      = regexp.MustCompile(`(\s+)`)
	emailPattern   = regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)+$`)
)

// Render converts plain text to HTML. Usable directly as a markup.Converter.
func Render(raw string) (string, error) {
	return Urlize(Linebreaks(raw)), nil
}

// Linebreaks wraps runs of text separated by blank lines in <p> tags and
// replaces remaining newlines with <br>.
func Linebreaks(text string) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	paragraphs := paragraphSplit.Split(normalized, -1)
	out := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		out = append(out, "<p>"+strings.ReplaceAll(paragraph, "\n", "<br>")+"</p>")
	}
	return strings.Join(out, "\n\n")
}

// Urlize wraps bare http(s) URLs, www-prefixed hosts, and email addresses in
// anchor tags. Words carrying markup of their own are left alone.
func Urlize(text string) string {
	words := splitWords(text)
	for i, word := range words {
		if strings.TrimSpace(word) == "" {
			continue
		}
		words[i] = urlizeWord(word)
	}
	return strings.Join(words, "")
}

// splitWords splits on whitespace while keeping the separators so the text
// reassembles byte for byte.
func splitWords(text string) []string {
	var words []string
	last := 0
	for _, match := range wordSplit.FindAllStringIndex(text, -1) {
		if match[0] > last {
			words = append(words, text[last:match[0]])
		}
		words = append(words, text[match[0]:match[1]])
		last = match[1]
	}
	if last < len(text) {
		words = append(words, text[last:])
	}
	return words
}

func urlizeWord(word string) string {
	// A word straight out of Linebreaks can carry surrounding tags, e.g.
	// "<p>example.com</p>". Link the bare middle and reattach the tags.
	head := word
	lead := ""
	for strings.HasPrefix(head, "<") {
		end := strings.Index(head, ">")
		if end < 0 {
			return word
		}
		lead += head[:end+1]
		head = head[end+1:]
	}

	tag := ""
	if idx := strings.Index(head, "<"); idx >= 0 {
		head, tag = head[:idx], head[idx:]
	}
	if head == "" || strings.ContainsAny(head, "<>\"") {
		return word
	}

	head, trailer := trimTrailingPunctuation(head)

	var href string
	switch {
	case strings.HasPrefix(head, "http://"), strings.HasPrefix(head, "https://"):
		href = head
	case strings.HasPrefix(head, "www."):
		href = "http://" + head
	case emailPattern.MatchString(head):
		href = "mailto:" + head
	default:
		return word
	}

	return fmt.Sprintf(`%s<a href="%s">%s</a>%s%s`, lead, href, head, trailer, tag)
}

func trimTrailingPunctuation(word string) (string, string) {
	trimmed := strings.TrimRight(word, `.,:;!?)'"`)
	return trimmed, word[len(trimmed):]
}
