// Package markdown renders knowledge base articles to HTML safe for
// embedding in clients.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type GoldmarkRenderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	return &GoldmarkRenderer{
		md:        md,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to HTML and strips anything the UGC policy
// does not allow. Sanitization runs after rendering so raw HTML inside
// the markdown body goes through the same policy.
func (r *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return r.sanitizer.Sanitize(buf.String()), nil
}
