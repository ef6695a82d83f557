package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "from", "to"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	result := Unified("line1\nline2\nline3\n", "line1\nmodified\nline3\n", "from", "to")

	assert.Equal(t, "--- from\n+++ to\n@@ -1,3 +1,3 @@\n line1\n-line2\n+modified\n line3\n", result)
}

func TestUnifiedAddedContent(t *testing.T) {
	t.Parallel()

	result := Unified("", "new content\n", "from", "to")

	assert.Contains(t, result, "@@ -1,0 +1,1 @@")
	assert.Contains(t, result, "+new content\n")
}

func TestUnifiedWithoutTrailingNewline(t *testing.T) {
	t.Parallel()

	result := Unified("old", "new", "width 50", "width 100")

	assert.Contains(t, result, "--- width 50\n")
	assert.Contains(t, result, "+++ width 100\n")
	assert.Contains(t, result, "-old\n")
	assert.Contains(t, result, "+new\n")
}

func TestLinesSortsKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bold = true\npaddingTop = 2\n", Lines(map[string]any{"paddingTop": 2, "bold": true}))
	assert.Empty(t, Lines(map[string]any{}))
}

func TestMaps(t *testing.T) {
	t.Parallel()

	from := map[string]any{"paddingTop": 1, "borderStyle": "rounded"}
	to := map[string]any{"paddingTop": 2, "borderStyle": "rounded", "bold": true}

	result := Maps(from, to, "narrow", "wide")
	assert.Contains(t, result, "+bold = true\n")
	assert.Contains(t, result, " borderStyle = rounded\n")
	assert.Contains(t, result, "-paddingTop = 1\n")
	assert.Contains(t, result, "+paddingTop = 2\n")
}
