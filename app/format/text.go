package format

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	strictPolicy   = bluemonday.StrictPolicy()
	markdownParser = goldmark.New().Parser()
)

// PlainText reduces a description that may carry Markdown or HTML to a
// single line of readable text.
func PlainText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	src := []byte(html.UnescapeString(strictPolicy.Sanitize(s)))
	doc := markdownParser.Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(src))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

// Label title-cases a category for display using the casing rules of tag.
// Dashes and underscores become spaces.
func Label(category string, tag language.Tag) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(category)
	return cases.Title(tag).String(words)
}

// Locale parses a BCP 47 tag, falling back to English.
func Locale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}
