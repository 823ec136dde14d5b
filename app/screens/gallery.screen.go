package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/format"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/gallery"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/screens/shared"
)

// HandleCatalogLoaded applies a finished fetch on the update loop. A failed
// load was already logged by the store; the gallery then stays empty.
func HandleCatalogLoaded(m app.Model, msg CatalogLoadedMsg, deps Deps) (app.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		deps.Logger.Debug("catalog unavailable, gallery left empty", "error", msg.Err)
		return m, nil
	}
	deps.Store.Apply(msg.Entries)
	m.Categories = deps.Store.Categories()
	if m.FilterIndex >= len(m.Categories) {
		m.FilterIndex = 0
	}

	// Ticked categories that vanished with the reload are dropped.
	kept := make([]string, 0, len(m.Checked))
	for _, c := range m.Checked {
		for _, known := range m.Categories {
			if c == known {
				kept = append(kept, c)
				break
			}
		}
	}
	if len(kept) != len(m.Checked) {
		m.Checked = kept
		deps.Engine.Dispatch(gallery.CheckboxState{Checked: kept})
	} else {
		deps.Engine.Recompute()
	}
	return syncPages(m, deps), nil
}

// HandleCopied reports a clipboard write in the status line.
func HandleCopied(m app.Model, msg CopiedMsg, deps Deps) app.Model {
	if msg.Err != nil {
		deps.Logger.Warn("clipboard write failed", "id", msg.ID, "error", msg.Err)
		m.StatusLine = fmt.Sprintf("Could not copy %s: %v", msg.ID, msg.Err)
		return m
	}
	m.StatusLine = fmt.Sprintf("Copied %s to the clipboard", msg.ID)
	return m
}

// UpdateScreenGallery routes a key press to the focused panel. Every state
// change goes through an engine intent.
func UpdateScreenGallery(m app.Model, msg tea.KeyMsg, deps Deps) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return setFocus(m, m.Focus.Next())
	case "ctrl+r":
		deps.Engine.Dispatch(gallery.ResetFilters{})
		m.Checked = nil
		m.SearchInput.SetValue("")
		m = firstPage(m)
		m.StatusLine = "Filters cleared"
		return syncPages(m, deps), nil
	}

	switch m.Focus {
	case app.FocusSearch:
		return updateSearch(m, msg, deps)
	case app.FocusFilters:
		return updateFilters(m, msg, deps)
	default:
		return updateCards(m, msg, deps)
	}
}

func setFocus(m app.Model, f app.Focus) (app.Model, tea.Cmd) {
	m.Focus = f
	if f == app.FocusSearch {
		cmd := m.SearchInput.Focus()
		return m, cmd
	}
	m.SearchInput.Blur()
	return m, nil
}

func updateSearch(m app.Model, msg tea.KeyMsg, deps Deps) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		return setFocus(m, app.FocusCards)
	}

	before := m.SearchInput.Value()
	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	if value := m.SearchInput.Value(); value != before {
		deps.Engine.Dispatch(gallery.SearchInput{Text: value})
		m = syncPages(firstPage(m), deps)
	}
	return m, cmd
}

func updateFilters(m app.Model, msg tea.KeyMsg, deps Deps) (app.Model, tea.Cmd) {
	n := len(m.Categories)
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return setFocus(m, app.FocusSearch)
	case "up", "k":
		if n > 0 {
			m.FilterIndex = (m.FilterIndex + n - 1) % n
		}
	case "down", "j":
		if n > 0 {
			m.FilterIndex = (m.FilterIndex + 1) % n
		}
	case " ", "enter", "x":
		if n == 0 {
			return m, nil
		}
		checked := m.ToggleChecked(m.Categories[m.FilterIndex])
		deps.Engine.Dispatch(gallery.CheckboxState{Checked: checked})
		m = syncPages(firstPage(m), deps)
	}
	return m, nil
}

func updateCards(m app.Model, msg tea.KeyMsg, deps Deps) (app.Model, tea.Cmd) {
	n := len(pageEntries(m, deps))
	p := &m.CardPaginator

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "/":
		return setFocus(m, app.FocusSearch)
	case "up", "k":
		if n > 0 {
			m.CardIndex = (m.CardIndex + n - 1) % n
		}
	case "down", "j":
		if n > 0 {
			m.CardIndex = (m.CardIndex + 1) % n
		}
	case "left", "h":
		if !p.OnFirstPage() {
			p.PrevPage()
			m.CardIndex = 0
		}
	case "right", "l":
		if !p.OnLastPage() {
			p.NextPage()
			m.CardIndex = 0
		}
	case " ", "enter":
		if e, ok := cursorEntry(m, deps); ok {
			deps.Engine.Dispatch(gallery.SelectCard{ID: e.ID})
		}
	case "i":
		if e, ok := cursorEntry(m, deps); ok {
			m.DetailID = e.ID
			m.CurrentScreen = app.ScreenDetails
		}
	case "v":
		m.Variant = m.Variant.Toggle()
		m.StatusLine = fmt.Sprintf("Showing %s cards", m.Variant)
	case "y":
		return copySelected(m, deps)
	}
	return m, nil
}

func copySelected(m app.Model, deps Deps) (app.Model, tea.Cmd) {
	id := deps.Binding.Last().Selected
	if id == "" {
		m.StatusLine = "Select a template first"
		return m, nil
	}
	return m, CopyIDCmd(id, deps.Clipboard)
}

func firstPage(m app.Model) app.Model {
	m.CardPaginator.Page = 0
	m.CardIndex = 0
	return m
}

// syncPages fits the paginator and cursor to the latest view.
func syncPages(m app.Model, deps Deps) app.Model {
	count := len(deps.Binding.Last().View)
	p := &m.CardPaginator
	if count == 0 {
		p.TotalPages = 1
	} else {
		p.SetTotalPages(count)
	}
	if p.Page >= p.TotalPages {
		p.Page = p.TotalPages - 1
	}
	if items := p.ItemsOnPage(count); m.CardIndex >= items {
		m.CardIndex = 0
		if items > 0 {
			m.CardIndex = items - 1
		}
	}
	return m
}

func pageEntries(m app.Model, deps Deps) []catalog.Entry {
	view := deps.Binding.Last().View
	start, end := m.CardPaginator.GetSliceBounds(len(view))
	if start >= end {
		return nil
	}
	return view[start:end]
}

func cursorEntry(m app.Model, deps Deps) (catalog.Entry, bool) {
	page := pageEntries(m, deps)
	if m.CardIndex < 0 || m.CardIndex >= len(page) {
		return catalog.Entry{}, false
	}
	return page[m.CardIndex], true
}

// ViewScreenGallery renders search, filter sidebar and the card grid.
func ViewScreenGallery(m app.Model, deps Deps) string {
	width := m.TerminalWidth
	if width <= 0 {
		width = 100
	}
	width -= app.DocStyle.GetHorizontalFrameSize()
	leftW := shared.ComputeLeftPanelWidth(width)
	rightW := shared.ComputeRightPanelWidth(width, leftW)
	u := deps.Binding.Last()

	var b strings.Builder
	b.WriteString(shared.Header(m.Version, m.CatalogSrc) + "\n\n")
	b.WriteString(m.SearchInput.View() + "\n")
	b.WriteString(shared.RenderChips(u.Filters))
	b.WriteString(app.PathStyle.Render(fmt.Sprintf("  %d results", u.Count)) + "\n\n")

	left := lipgloss.NewStyle().Width(leftW).Render(renderFilters(m))
	right := renderCards(m, u, rightW)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n\n")

	if m.StatusLine != "" {
		b.WriteString(app.PathStyle.Render(m.StatusLine) + "\n")
	}
	b.WriteString(shared.FooterFor(m.Focus))
	return app.DocStyle.Render(b.String())
}

func renderFilters(m app.Model) string {
	locale := format.Locale(m.Locale)
	lines := []string{app.SubtitleStyle.Render("Categories")}
	if m.Loading {
		lines = append(lines, app.HelpStyle.Render("loading…"))
	}
	for i, cat := range m.Categories {
		box := "[ ]"
		if m.IsChecked(cat) {
			box = "[x]"
		}
		label := box + " " + format.Label(cat, locale)
		if m.Focus == app.FocusFilters && i == m.FilterIndex {
			lines = append(lines, app.HighlightStyle.Render("> "+label))
		} else {
			lines = append(lines, app.ChoiceStyle.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}

func renderCards(m app.Model, u gallery.Update, width int) string {
	if m.Loading {
		return app.HelpStyle.Render("Loading templates…")
	}
	if len(u.View) == 0 {
		return app.HelpStyle.Render("No templates match.")
	}

	locale := format.Locale(m.Locale)
	start, end := m.CardPaginator.GetSliceBounds(len(u.View))
	cols := shared.CardColumns(width)
	cardW := shared.CardWidth(width, cols)

	cards := make([]string, 0, end-start)
	for i, e := range u.View[start:end] {
		state := shared.CardState{
			Cursor:   m.Focus == app.FocusCards && i == m.CardIndex,
			Selected: e.ID == u.Selected,
		}
		cards = append(cards, shared.RenderCard(e, m.Variant, state, cardW, locale))
	}
	out := shared.Grid(cards, cols)
	if m.CardPaginator.TotalPages > 1 {
		out += "\n" + m.CardPaginator.View()
	}
	return out
}
