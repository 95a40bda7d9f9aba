package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldmarkRenderer_RendersBasicMarkdown(t *testing.T) {
	renderer := NewGoldmarkRenderer()

	html, err := renderer.Render("# Fryer cleaning\n\nUse **only** approved degreaser.")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Fryer cleaning")
	assert.Contains(t, html, "<strong>only</strong>")
}

func TestGoldmarkRenderer_RendersGFMTables(t *testing.T) {
	renderer := NewGoldmarkRenderer()

	html, err := renderer.Render("| Part | Qty |\n|------|-----|\n| Belt | 2 |")
	require.NoError(t, err)

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "Belt")
}

func TestGoldmarkRenderer_StripsScriptTags(t *testing.T) {
	renderer := NewGoldmarkRenderer()

	html, err := renderer.Render("Safe text\n\n<script>alert('xss')</script>")
	require.NoError(t, err)

	assert.Contains(t, html, "Safe text")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert")
}

func TestGoldmarkRenderer_StripsEventHandlers(t *testing.T) {
	renderer := NewGoldmarkRenderer()

	html, err := renderer.Render(`<a href="https://example.com" onclick="steal()">link</a>`)
	require.NoError(t, err)

	assert.NotContains(t, html, "onclick")
	assert.Contains(t, html, "example.com")
}
