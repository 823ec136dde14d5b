package shared

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app"
)

const (
	panelGap     = 2
	minCardWidth = 30
	maxCardCols  = 3
)

// ComputeLeftPanelWidth returns the filter sidebar width for a terminal
// width, clamped so the card area keeps at least one card column.
func ComputeLeftPanelWidth(termWidth int) int {
	const (
		defaultLeft = 24
		minLeft     = 16
		maxLeft     = 30
	)
	if termWidth <= 0 {
		return defaultLeft
	}
	left := termWidth / 4
	if left < minLeft {
		left = minLeft
	}
	if left > maxLeft {
		left = maxLeft
	}
	if left+panelGap+minCardWidth > termWidth {
		left = termWidth - panelGap - minCardWidth
	}
	if left < minLeft {
		left = minLeft
	}
	return left
}

// ComputeRightPanelWidth returns the remaining width after the left panel and a gap.
func ComputeRightPanelWidth(termWidth, left int) int {
	w := termWidth - left - panelGap
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// CardColumns returns how many cards fit side by side in width.
func CardColumns(width int) int {
	cols := (width + panelGap) / (minCardWidth + panelGap)
	if cols < 1 {
		cols = 1
	}
	if cols > maxCardCols {
		cols = maxCardCols
	}
	return cols
}

// CardWidth returns the outer width of one card when cols share width.
func CardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - (cols-1)*panelGap) / cols
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// Grid lays cards out in rows of cols.
func Grid(cards []string, cols int) string {
	if len(cards) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}
	gap := lipgloss.NewStyle().Width(panelGap).Render("")
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		var row []string
		for i, c := range cards[start:end] {
			if i > 0 {
				row = append(row, gap)
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Header renders the title line with the catalog source in gray.
func Header(version, source string) string {
	title := app.TitleStyle.Render("Site templates")
	meta := app.PathStyle.Render(fmt.Sprintf("  %s  ·  ngs %s", source, version))
	return title + meta
}
