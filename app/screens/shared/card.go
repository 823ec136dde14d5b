package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/format"
)

// CardState carries the per-card flags that change its border.
type CardState struct {
	Cursor   bool
	Selected bool
}

// descriptionLines caps the description on detailed cards.
const descriptionLines = 3

// RenderCard draws one entry at the given outer width. The compact variant
// shows title, category and tags; the detailed one adds description and
// features.
func RenderCard(e catalog.Entry, variant app.CardVariant, state CardState, width int, locale language.Tag) string {
	style := app.CardStyle
	switch {
	case state.Selected:
		style = app.SelectedCardStyle
	case state.Cursor:
		style = app.CursorCardStyle
	}
	// Width excludes the border.
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	style = style.Width(inner)
	text := inner - style.GetHorizontalPadding()

	title := e.Title
	if state.Selected {
		title = "✓ " + title
	}
	lines := []string{
		app.SubtitleStyle.Render(truncate(title, text)),
		app.PathStyle.Render(format.Label(e.UseCase, locale)),
	}

	if variant == app.CardDetailed {
		if desc := format.PlainText(e.Description); desc != "" {
			wrapped := lipgloss.NewStyle().Width(text).Render(desc)
			lines = append(lines, ClampLines(wrapped, descriptionLines))
		}
	}

	if len(e.Tags) > 0 {
		tags := make([]string, len(e.Tags))
		for i, t := range e.Tags {
			tags[i] = "#" + t
		}
		lines = append(lines, app.ChoiceStyle.Render(truncate(strings.Join(tags, " "), text)))
	}
	if variant == app.CardDetailed && len(e.Features) > 0 {
		lines = append(lines, app.HelpStyle.Render(truncate(strings.Join(e.Features, " · "), text)))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderChips renders active filters as chips, or a hint when there are none.
func RenderChips(filters []string) string {
	if len(filters) == 0 {
		return app.HelpStyle.Render("no filters")
	}
	chips := make([]string, len(filters))
	for i, f := range filters {
		chips[i] = app.ChipStyle.Render(f)
	}
	return strings.Join(chips, " ")
}

// ClampLines keeps at most max lines, marking the cut with an ellipsis.
func ClampLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if max <= 0 || len(lines) <= max {
		return s
	}
	lines = lines[:max]
	lines[max-1] = strings.TrimRight(lines[max-1], " ") + "…"
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most width terminal cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
