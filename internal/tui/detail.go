package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/hgebre/slackstats/internal/render"
	"github.com/hgebre/slackstats/internal/stats"
)

// updateDetail rerenders the right panel for the current selection when it
// changed since the last render.
func (m *model) updateDetail() {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		m.detail.SetContent("")
		m.detailKey = ""
		return
	}
	u := m.visible[m.cursor]
	if u.ID == m.detailKey {
		return
	}
	m.detail.SetContent(renderDetail(u, m.detailWidth()))
	m.detail.GotoTop()
	m.detailKey = u.ID
}

// renderDetail builds the breakdown panel for one user: identity header plus
// a bar chart across all four metrics.
func renderDetail(u userRow, width int) string {
	header := lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).Render(u.Name)
	id := lipgloss.NewStyle().Foreground(colorDim).Render(u.ID)

	entries := make([]stats.NamedCount, metricCount)
	for i, name := range metricNames {
		entries[i] = stats.NamedCount{Name: name, Count: u.Counts[i]}
	}
	chart := render.BarChart("activity", entries, render.ChartOptions{Width: width})

	return strings.Join([]string{header, id, "", chart}, "\n")
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
