package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderList renders the left panel: the leaderboard for the active metric
// with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No users")
		return empty
	}

	var lines []string
	for i, u := range m.visible {
		if i < m.listOffset {
			continue
		}
		if len(lines) >= height {
			break
		}
		lines = append(lines, formatUserLine(i+1, u.Name, u.Counts[m.metric], width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatUserLine formats a single leaderboard entry:
//
//	[>] rank. name ........ count
func formatUserLine(rank int, name string, count, width int, selected bool) string {
	countStr := fmt.Sprintf("%d", count)

	// Truncate name to fit: prefix "  123. " + gap + count
	nameMax := width - 2 - 5 - 2 - len(countStr)
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "…")
	}
	name = runewidth.FillRight(name, nameMax)

	line := fmt.Sprintf("%3d. %s  %s", rank, styleListNormal.Render(name), styleListCount.Render(countStr))
	if selected {
		return styleListSelected.Render("> ") + line
	}
	return "  " + line
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	if listHeight < 1 {
		listHeight = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+listHeight {
		m.listOffset = m.cursor - listHeight + 1
	}
}
