package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var richTextRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderRichText converts a richText field's markdown into HTML for the
// rendering layer. The core never interprets the output itself.
func RenderRichText(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := richTextRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
