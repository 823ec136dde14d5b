package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenGallery Screen = iota
	ScreenDetails
)

// Focus is the gallery panel that receives key presses.
type Focus int

const (
	FocusSearch Focus = iota
	FocusFilters
	FocusCards
)

// Next cycles search -> filters -> cards -> search.
func (f Focus) Next() Focus { return (f + 1) % 3 }

// CardVariant selects how much of an entry a card shows.
type CardVariant int

const (
	CardDetailed CardVariant = iota
	CardCompact
)

func (v CardVariant) String() string {
	if v == CardCompact {
		return "compact"
	}
	return "detailed"
}

// Toggle switches between the two variants.
func (v CardVariant) Toggle() CardVariant {
	if v == CardCompact {
		return CardDetailed
	}
	return CardCompact
}

// ParseCardVariant maps a config value onto a CardVariant.
func ParseCardVariant(s string) (CardVariant, error) {
	switch s {
	case "detailed", "":
		return CardDetailed, nil
	case "compact":
		return CardCompact, nil
	default:
		return CardDetailed, fmt.Errorf("unknown card variant %q", s)
	}
}

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen Screen
	Focus         Focus
	Variant       CardVariant
	Version       string

	// Catalog load state.
	Loading    bool
	CatalogSrc string

	// Search box and card pages.
	SearchInput   textinput.Model
	CardPaginator paginator.Model
	CardIndex     int // cursor within the current page

	// DetailID is the entry shown on ScreenDetails.
	DetailID string

	// Filter checkboxes. Categories come from the store; Checked holds the
	// ticked ones in the order they were ticked.
	Categories  []string
	FilterIndex int
	Checked     []string

	// Locale used for category labels.
	Locale string

	StatusLine    string
	TerminalWidth int
}

// NewModel builds the initial model with perPage cards per page.
func NewModel(variant CardVariant, perPage int, locale, version string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by tag"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Focus()

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = perPage
	p.ActiveDot = HighlightStyle.Render("•")
	p.InactiveDot = ChoiceStyle.Render("•")

	return Model{
		CurrentScreen: ScreenGallery,
		Focus:         FocusSearch,
		Variant:       variant,
		Version:       version,
		Loading:       true,
		SearchInput:   ti,
		CardPaginator: p,
		Locale:        locale,
	}
}

// IsChecked reports whether category is ticked.
func (m Model) IsChecked(category string) bool {
	for _, c := range m.Checked {
		if c == category {
			return true
		}
	}
	return false
}

// ToggleChecked ticks or unticks category and returns the full checked set.
func (m *Model) ToggleChecked(category string) []string {
	for i, c := range m.Checked {
		if c == category {
			m.Checked = append(m.Checked[:i:i], m.Checked[i+1:]...)
			return append([]string(nil), m.Checked...)
		}
	}
	m.Checked = append(m.Checked, category)
	return append([]string(nil), m.Checked...)
}

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ChipStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFA500")).Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
	SelectedCardStyle = CardStyle.BorderForeground(lipgloss.Color("#FFA500"))
	CursorCardStyle   = CardStyle.BorderForeground(lipgloss.Color("#FFFFFF"))
)
