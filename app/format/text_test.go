package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPlainText(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"plain":        {in: "A minimal portfolio.", want: "A minimal portfolio."},
		"empty":        {in: "  ", want: ""},
		"emphasis":     {in: "**Fast** setup", want: "Fast setup"},
		"paragraphs":   {in: "First para.\n\nSecond para.", want: "First para. Second para."},
		"heading":      {in: "# Blog\nPosts and tags", want: "Blog Posts and tags"},
		"link":         {in: "See [the docs](https://example.com)", want: "See the docs"},
		"script":       {in: "<script>alert(1)</script>Safe", want: "Safe"},
		"inline html":  {in: "Line<br>break <b>bold</b>", want: "Linebreak bold"},
		"entities":     {in: "Fish &amp; chips", want: "Fish & chips"},
		"list":         {in: "- one\n- two", want: "one two"},
		"apostrophe":   {in: "It's yours", want: "It's yours"},
		"extra spaces": {in: "a   \n  b", want: "a b"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlainText(tc.in))
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Blog", Label("blog", language.English))
	assert.Equal(t, "Landing Page", Label("landing-page", language.English))
	assert.Equal(t, "Research Lab", Label("research_lab", language.English))
	assert.Equal(t, "Cv", Label("CV", language.English))
}

func TestLocale(t *testing.T) {
	assert.Equal(t, language.MustParse("nb-NO"), Locale("nb-NO"))
	assert.Equal(t, language.English, Locale("not a tag!"))
}
