// Package render converts stored markdown content into HTML for the public API.
package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// Markdown renders markdown text to HTML. On render failure the raw text is
// returned unchanged rather than dropping content from the response.
func Markdown(text string) string {
	if text == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := engine.Convert([]byte(text), &buf); err != nil {
		return text
	}
	return buf.String()
}
