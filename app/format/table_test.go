package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestASCIITable(t *testing.T) {
	tbl := NewTable(ASCII)
	tbl.Header("ID", "Title")
	tbl.Row("blog-classic", "Blog")
	tbl.Footer("", "1 results")

	out := tbl.String()

	assert.Contains(t, out, "blog-classic")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "1 RESULTS")
	assert.Contains(t, out, "┌")
}

func TestMarkdownTable(t *testing.T) {
	tbl := NewTable(Markdown)
	tbl.Header("ID", "Title")
	tbl.Row("resume-single", "CV")
	tbl.Columns(ColumnConfig{Number: 1, MaxWidth: 40})

	lines := strings.Split(strings.TrimSpace(tbl.String()), "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "| ID | Title |")
	assert.Contains(t, lines[2], "| resume-single | CV |")
}
