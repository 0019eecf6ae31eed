package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/deezer-flow/internal/deezer"
	"github.com/llehouerou/deezer-flow/internal/launcher"
	"github.com/llehouerou/deezer-flow/internal/plugin"
)

// rows per result: title and subtitle
const linesPerResult = 2

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	normalStyle   = lipgloss.NewStyle()
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func (m Model) innerWidth() int {
	return max(m.width-4, 20)
}

func (m Model) visibleHeight() int {
	// border (2) + input (1) + separator (1) + status (1)
	rows := m.height - 5
	return max(rows/linesPerResult, 1)
}

func (m Model) emptyMessage() string {
	switch {
	case m.loading:
		return "Searching..."
	case m.input.Value() == "":
		return "Type a query and press enter"
	default:
		return "Press enter to search"
	}
}

// detail returns catalog facts shown next to a result.
func detail(item deezer.Item) string {
	switch it := item.(type) {
	case deezer.Artist:
		if it.Fans > 0 {
			return humanize.Comma(int64(it.Fans)) + " fans"
		}
	case deezer.Album:
		if it.TrackCount > 0 {
			return humanize.Comma(int64(it.TrackCount)) + " tracks"
		}
	case deezer.Playlist:
		if it.TrackCount > 0 {
			return humanize.Comma(int64(it.TrackCount)) + " tracks"
		}
	case deezer.Track:
		if it.Duration > 0 {
			return fmt.Sprintf("%d:%02d", it.Duration/60, it.Duration%60)
		}
	}
	return ""
}

func (m Model) formatResult(r plugin.Result, innerW int, isCursor bool) []string {
	prefix := "  "
	if isCursor {
		prefix = "> "
	}
	availW := innerW - 2

	right := detail(r.Item)
	if r.Category != "" {
		right = strings.TrimSpace(fmt.Sprintf("%s  %3d", right, r.Score))
	}

	title := m.icons.Format(r.Category, isControl(r), r.Entry.Title)
	maxLeftW := availW
	if right != "" {
		maxLeftW = availW - runewidth.StringWidth(right) - 2
	}
	title = truncate(title, max(maxLeftW, 1))

	style := normalStyle
	if isCursor {
		style = selectedStyle
	}
	line := row(style.Render(prefix+title), dimStyle.Render(right), innerW)

	sub := sanitize(r.Entry.SubTitle)
	if r.Category != "" {
		sub = categoryStyle.Render(r.Category.String()) + " " + dimStyle.Render(sub)
	} else {
		sub = dimStyle.Render(sub)
	}
	return []string{line, "  " + ansi.Truncate(sub, availW, "...")}
}

func isControl(r plugin.Result) bool {
	if r.Entry.Action == nil {
		return false
	}
	switch r.Entry.Action.Method {
	case launcher.MethodPlayPause, launcher.MethodStop:
		return true
	}
	return false
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerW := m.innerWidth()

	inputLine := m.input.View()
	if m.loading {
		inputLine += " " + m.spinner.View()
	}
	separator := strings.Repeat("─", innerW)

	visible := m.visibleHeight()
	var lines []string
	if len(m.results) == 0 {
		lines = append(lines, dimStyle.Render(m.emptyMessage()))
	} else {
		end := min(m.offset+visible, len(m.results))
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.formatResult(m.results[i], innerW, i == m.cursor)...)
		}
	}
	for len(lines) < visible*linesPerResult {
		lines = append(lines, "")
	}

	status := dimStyle.Render("enter: search/select  ↑/↓: move  esc: clear/quit")
	if m.status != "" {
		st := dimStyle
		if m.failed {
			st = errorStyle
		}
		status = st.Render(ansi.Truncate(m.status, innerW, "..."))
	}

	content := inputLine + "\n" + separator + "\n" + strings.Join(lines, "\n") + "\n" + status
	return boxStyle.Width(innerW).Render(content)
}
