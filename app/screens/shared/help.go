package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app"
)

// Footer joins navigation tips with a consistent separator and applies
// the global help style for footers.
func Footer(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return app.HelpStyle.Render(strings.Join(parts, "  •  "))
}

// FooterFor returns the key hints for the focused gallery panel.
func FooterFor(focus app.Focus) string {
	switch focus {
	case app.FocusSearch:
		return Footer("type to search", "tab: filters", "ctrl+r: reset", "ctrl+c: quit")
	case app.FocusFilters:
		return Footer("↑/↓: move", "space: toggle", "tab: cards", "ctrl+r: reset", "q: quit")
	default:
		return Footer("↑/↓: move", "←/→: page", "enter: select", "i: details", "v: variant", "y: copy id", "tab: search", "q: quit")
	}
}
