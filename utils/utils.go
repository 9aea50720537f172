package utils

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RenderMarkdownPreview renders note content for the preview pane.
func RenderMarkdownPreview(content string, w int) string {
	if w <= 0 {
		w = 80
	}

	// Initiate glamour renderer to add colors to our markdown preview
	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(w),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(content)
	if err != nil {
		return "Error rendering markdown" // Displayed in Preview Pane
	}

	return markdown
}

// PlainText flattens rich markup into the raw text it carries, used for
// one-line snippets in the list. Matching still runs over the raw content;
// this is presentation only.
func PlainText(markup string) string {
	source := []byte(markup)
	parser := goldmark.DefaultParser()
	document := parser.Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(b.String()), " ")
}

// Snippet trims the flattened content to at most n runes.
func Snippet(markup string, n int) string {
	plain := PlainText(markup)
	runes := []rune(plain)
	if len(runes) <= n {
		return plain
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
