// Package tui is the interactive leaderboard browser: a filterable per-user
// list for the active metric on the left, the selected user's full breakdown
// on the right.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hgebre/slackstats/internal/slack"
	"github.com/hgebre/slackstats/internal/stats"
)

// Metric indexes into userRow.Counts.
const (
	metricMessages = iota
	metricReplies
	metricMentions
	metricLinks
	metricCount
)

var metricNames = [metricCount]string{"messages", "replies", "mentions", "links"}

// userRow is one directory-resolved user with all four counts.
type userRow struct {
	ID     string
	Name   string
	Counts [metricCount]int
}

type model struct {
	rows        []userRow // every resolved user
	visible     []userRow // filtered and sorted for the active metric
	metric      int
	cursor      int
	listOffset  int
	filterInput textinput.Model
	detail      viewport.Model
	detailKey   string // user ID currently rendered, to avoid rerenders
	width       int
	height      int
	ready       bool
	quitting    bool
	selected    *userRow
}

// buildRows merges the four count maps into one row per user the directory
// can name; unresolved IDs are dropped, matching ResolveNames.
func buildRows(report stats.Report, dir slack.Directory) []userRow {
	byID := make(map[string]*userRow)
	add := func(metric int, counts stats.Counts) {
		for id, n := range counts {
			name, ok := dir[id]
			if !ok {
				continue
			}
			row, ok := byID[id]
			if !ok {
				row = &userRow{ID: id, Name: name}
				byID[id] = row
			}
			row.Counts[metric] += n
		}
	}
	add(metricMessages, report.Messages)
	add(metricReplies, report.Replies)
	add(metricMentions, report.Mentions)
	add(metricLinks, report.Links)

	rows := make([]userRow, 0, len(byID))
	for _, row := range byID {
		rows = append(rows, *row)
	}
	return rows
}

func initialModel(report stats.Report, dir slack.Directory) model {
	ti := textinput.New()
	ti.Placeholder = "Filter users..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	m := model{
		rows:        buildRows(report, dir),
		filterInput: ti,
		detail:      viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// Run starts the browser and blocks until it exits. If the user selected an
// entry with Enter, the user ID is copied to the clipboard.
func Run(report stats.Report, dir slack.Directory) error {
	m := initialModel(report, dir)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.selected != nil {
		return copyUserID(*fm.selected)
	}
	return nil
}

// copyUserID puts the selected user's ID on the clipboard, printing it as a
// fallback when no clipboard is available.
func copyUserID(u userRow) error {
	if err := clipboard.WriteAll(u.ID); err != nil {
		fmt.Printf("%s\n", u.ID)
		return nil
	}
	fmt.Printf("Copied to clipboard: %s (%s)\n", u.ID, u.Name)
	return nil
}

// refresh recomputes the visible slice: filter by name or ID, then sort by
// the active metric descending (name ascending on ties).
func (m *model) refresh() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))

	m.visible = m.visible[:0]
	for _, row := range m.rows {
		if query != "" &&
			!strings.Contains(strings.ToLower(row.Name), query) &&
			!strings.Contains(strings.ToLower(row.ID), query) {
			continue
		}
		m.visible = append(m.visible, row)
	}

	metric := m.metric
	sort.Slice(m.visible, func(i, j int) bool {
		if m.visible[i].Counts[metric] != m.visible[j].Counts[metric] {
			return m.visible[i].Counts[metric] > m.visible[j].Counts[metric]
		}
		return m.visible[i].Name < m.visible[j].Name
	})

	if m.cursor >= len(m.visible) {
		m.cursor = 0
		m.listOffset = 0
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.detail = newViewport(m.detailWidth(), m.panelHeight())
		m.detailKey = ""
		m.updateDetail()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if len(m.visible) > 0 && m.cursor < len(m.visible) {
				u := m.visible[m.cursor]
				m.selected = &u
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Metric):
			m.metric = (m.metric + 1) % metricCount
			m.refresh()
			m.cursor = 0
			m.listOffset = 0
			m.updateDetail()
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				m.updateDetail()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				m.updateDetail()
			}
			return m, nil

		case key.Matches(msg, keys.DetailUp):
			m.detail.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.DetailDn):
			m.detail.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.detail.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.detail.LineDown(m.panelHeight())
			return m, nil
		}

		// Pass remaining keys to the filter input
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		m.refresh()
		m.updateDetail()
		return m, tiCmd

	case tea.MouseMsg:
		if !m.ready || len(m.visible) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			maxOffset := len(m.visible) - m.panelHeight()
			if maxOffset < 0 {
				maxOffset = 0
			}
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.visible) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				m.updateDetail()
			}
			return m, nil

		case region == regionDetail && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.detail, vpCmd = m.detail.Update(msg)
			return m, vpCmd
		}

		return m, nil
	}

	return m, nil
}

// View renders the full browser.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View() + "  " + m.metricTabs()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.detail.Width = detailW
	m.detail.Height = panelH
	detailPanel := styleActiveBorder.
		Width(detailW).
		Height(panelH).
		Render(m.detail.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// metricTabs renders the metric names with the active one highlighted.
func (m model) metricTabs() string {
	tabs := make([]string, metricCount)
	for i, name := range metricNames {
		if i == m.metric {
			tabs[i] = styleMetricActive.Render(name)
		} else {
			tabs[i] = styleMetricIdle.Render(name)
		}
	}
	return strings.Join(tabs, " | ")
}

// layout helpers

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	// 40% for list, minus border padding
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) detailWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*60/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionDetail
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1 // col 0=border, 1..lw=content, lw+1=border

	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY
	}

	if x > listBoxRight+1 {
		return regionDetail, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d users", len(m.visible)))
	parts = append(parts, "tab metric")
	parts = append(parts, "click/up/dn navigate")
	parts = append(parts, "scroll/C-u/C-d detail")
	parts = append(parts, "Enter copy user id")
	parts = append(parts, "Esc quit")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
