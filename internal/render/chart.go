// Package render produces the terminal presentation of aggregated counts:
// ranked leaderboards and horizontal bar charts.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hgebre/slackstats/internal/stats"
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")). // bright blue
			Bold(true)

	styleBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // bright green

	styleCount = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // gray

	styleEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// ChartOptions controls bar chart layout.
type ChartOptions struct {
	Width    int // total chart width in columns (0 = 80)
	MaxLabel int // widest label before truncation (0 = 24)
}

// BarChart renders entries as a titled horizontal bar chart. Bars scale
// against the largest count; nonzero counts always get at least one cell.
func BarChart(title string, entries []stats.NamedCount, opts ChartOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	maxLabel := opts.MaxLabel
	if maxLabel <= 0 {
		maxLabel = 24
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(styleEmpty.Render("  (no data)"))
		return b.String()
	}

	labelW := 0
	maxCount := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Name); w > labelW {
			labelW = w
		}
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	if labelW > maxLabel {
		labelW = maxLabel
	}

	countW := len(fmt.Sprintf("%d", maxCount))
	barSpace := width - labelW - countW - 4
	if barSpace < 10 {
		barSpace = 10
	}

	for _, e := range entries {
		label := e.Name
		if runewidth.StringWidth(label) > labelW {
			label = runewidth.Truncate(label, labelW, "…")
		}
		label = runewidth.FillRight(label, labelW)

		barLen := 0
		if maxCount > 0 {
			barLen = e.Count * barSpace / maxCount
		}
		if barLen == 0 && e.Count > 0 {
			barLen = 1
		}

		fmt.Fprintf(&b, "%s  %s %s\n",
			label,
			styleBar.Render(strings.Repeat("█", barLen)),
			styleCount.Render(fmt.Sprintf("%*d", countW, e.Count)),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}
