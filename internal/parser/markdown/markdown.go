// Package markdown converts Markdown memo bodies into the HTML subset the
// sanitizer understands.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// ToHTML renders Markdown source to HTML. Raw HTML in the source is omitted
// by goldmark's default renderer.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}
