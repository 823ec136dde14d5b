package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/format"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/gallery"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/screens/shared"
)

// UpdateScreenDetails handles keys on the details screen.
func UpdateScreenDetails(m app.Model, msg tea.KeyMsg, deps Deps) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "backspace", "i":
		m.CurrentScreen = app.ScreenGallery
	case " ", "enter":
		deps.Engine.Dispatch(gallery.SelectCard{ID: m.DetailID})
	case "y":
		return copySelected(m, deps)
	}
	return m, nil
}

// ViewScreenDetails renders every field of the entry under the cursor.
func ViewScreenDetails(m app.Model, deps Deps) string {
	entry, ok := deps.Store.Lookup(m.DetailID)
	if !ok {
		return app.DocStyle.Render(app.HelpStyle.Render("Template not found.") + "\n\n" + shared.Footer("esc: back"))
	}

	width := m.TerminalWidth
	if width <= 0 {
		width = 80
	}
	width -= app.DocStyle.GetHorizontalFrameSize()
	locale := format.Locale(m.Locale)
	wrap := lipgloss.NewStyle().Width(width)

	title := entry.Title
	if deps.Binding.Last().Selected == entry.ID {
		title = "✓ " + title
	}

	var b strings.Builder
	b.WriteString(app.TitleStyle.Render(title) + "\n")
	b.WriteString(app.PathStyle.Render(fmt.Sprintf("%s  ·  %s", entry.ID, format.Label(entry.UseCase, locale))) + "\n\n")
	if desc := format.PlainText(entry.Description); desc != "" {
		b.WriteString(wrap.Render(desc) + "\n\n")
	}
	if len(entry.Tags) > 0 {
		b.WriteString(app.SubtitleStyle.Render("Tags") + "\n")
		b.WriteString(app.ChoiceStyle.Render(strings.Join(entry.Tags, ", ")) + "\n\n")
	}
	if len(entry.Features) > 0 {
		b.WriteString(app.SubtitleStyle.Render("Features") + "\n")
		for _, f := range entry.Features {
			b.WriteString(app.ChoiceStyle.Render("  • "+f) + "\n")
		}
		b.WriteString("\n")
	}
	if m.StatusLine != "" {
		b.WriteString(app.PathStyle.Render(m.StatusLine) + "\n")
	}
	b.WriteString(shared.Footer("enter: select", "y: copy id", "esc: back", "q: quit"))
	return app.DocStyle.Render(b.String())
}
