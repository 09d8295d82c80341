package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hgebre/slackstats/internal/stats"
)

// Leaderboard renders entries as a titled ranked list, truncated to topN
// (topN <= 0 keeps everything).
func Leaderboard(title string, entries []stats.NamedCount, topN int) string {
	entries = stats.Top(entries, topN)

	var b strings.Builder
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(styleEmpty.Render("  (no data)"))
		return b.String()
	}

	labelW := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Name); w > labelW {
			labelW = w
		}
	}

	for i, e := range entries {
		fmt.Fprintf(&b, "%3d. %s  %s\n",
			i+1,
			runewidth.FillRight(e.Name, labelW),
			styleCount.Render(fmt.Sprintf("%d", e.Count)),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}
