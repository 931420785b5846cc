package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ide-commands/cmd/palette"
	"ide-commands/cmd/shortcut"
)

var titleStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

var listDescStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

var selectedTitleStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Background(lipgloss.Color("#dde4f0")).
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#1a1a1a"})

var mainTitle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230"))

var customStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffaa00"))

// List is the scrollable shortcut list of the preferences screen.
type List struct {
	entries       []shortcut.Entry
	visible       []shortcut.Entry
	selectedIdx   int
	scrollOffset  int
	height, width int

	searchQuery string
}

func NewList() *List {
	return &List{}
}

// SetSize sets the height and width of the list.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetEntries replaces the rows, keeping the selected command selected when it
// is still listed.
func (l *List) SetEntries(entries []shortcut.Entry) {
	selected, hadSelection := l.GetSelected()
	l.entries = entries
	l.applySearch()
	if !hadSelection {
		return
	}
	for i, entry := range l.visible {
		if entry.ID == selected.ID {
			l.selectedIdx = i
			return
		}
	}
}

// NumEntries returns the number of rows currently shown.
func (l *List) NumEntries() int {
	return len(l.visible)
}

// GetSelected returns the selected row.
func (l *List) GetSelected() (shortcut.Entry, bool) {
	if l.selectedIdx < 0 || l.selectedIdx >= len(l.visible) {
		return shortcut.Entry{}, false
	}
	return l.visible[l.selectedIdx], true
}

// Down selects the next row.
func (l *List) Down() {
	if l.selectedIdx < len(l.visible)-1 {
		l.selectedIdx++
	}
}

// Up selects the previous row.
func (l *List) Up() {
	if l.selectedIdx > 0 {
		l.selectedIdx--
	}
}

// Search narrows the rows to commands whose text matches query, using the
// same ordering as the command palette.
func (l *List) Search(query string) {
	l.searchQuery = query
	l.selectedIdx = 0
	l.scrollOffset = 0
	l.applySearch()
}

// ClearSearch shows every row again.
func (l *List) ClearSearch() {
	l.Search("")
}

// GetSearchState returns whether a search is active and its query.
func (l *List) GetSearchState() (bool, string) {
	return l.searchQuery != "", l.searchQuery
}

func (l *List) applySearch() {
	l.visible = palette.Filter(l.entries, l.searchQuery, func(e shortcut.Entry) string {
		return e.Command
	})
	if l.selectedIdx >= len(l.visible) {
		l.selectedIdx = max(0, len(l.visible)-1)
	}
}

// calculateMaxVisibleItems calculates how many rows fit below the title
func (l *List) calculateMaxVisibleItems() int {
	titleLines := 3
	return max(l.height-titleLines, 1)
}

// ensureSelectedVisible adjusts the scroll offset so the selection is shown
func (l *List) ensureSelectedVisible() {
	maxVisible := l.calculateMaxVisibleItems()
	if l.selectedIdx < l.scrollOffset {
		l.scrollOffset = l.selectedIdx
	}
	if l.selectedIdx >= l.scrollOffset+maxVisible {
		l.scrollOffset = l.selectedIdx - maxVisible + 1
	}
	if l.scrollOffset > max(0, len(l.visible)-1) {
		l.scrollOffset = max(0, len(l.visible)-1)
	}
}

// getScrollIndicator returns the visible range, and the filter status when a
// search is active
func (l *List) getScrollIndicator() string {
	maxVisible := l.calculateMaxVisibleItems()
	total := len(l.entries)

	if len(l.visible) <= maxVisible {
		if len(l.visible) < total {
			return fmt.Sprintf(" [%d/%d]", len(l.visible), total)
		}
		return ""
	}

	start := l.scrollOffset + 1
	end := min(l.scrollOffset+maxVisible, len(l.visible))
	if len(l.visible) < total {
		return fmt.Sprintf(" [%d-%d/%d of %d]", start, end, len(l.visible), total)
	}
	return fmt.Sprintf(" [%d-%d/%d]", start, end, len(l.visible))
}

func (l *List) String() string {
	titleText := " Shortcuts"
	if l.searchQuery != "" {
		titleText += fmt.Sprintf(" (%s)", l.searchQuery)
	}
	titleText += " "

	l.ensureSelectedVisible()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(mainTitle.Render(titleText + l.getScrollIndicator()))
	b.WriteString("\n\n")

	if len(l.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("No commands match"))
		return lipgloss.Place(l.width, l.height, lipgloss.Left, lipgloss.Top, b.String())
	}

	keyWidth := 0
	for _, entry := range l.visible {
		keyWidth = max(keyWidth, runewidth.StringWidth(entry.Display))
	}

	end := min(l.scrollOffset+l.calculateMaxVisibleItems(), len(l.visible))
	for i := l.scrollOffset; i < end; i++ {
		entry := l.visible[i]
		key := entry.Display
		if key == "" {
			key = "-"
		}
		key += strings.Repeat(" ", max(0, keyWidth-runewidth.StringWidth(key)))

		row := fmt.Sprintf("%s  %s", key, entry.Command)
		style := titleStyle
		if i == l.selectedIdx {
			style = selectedTitleStyle
		}
		b.WriteString(style.Render(row))
		b.WriteString(listDescStyle.Render(string(entry.Area)))
		if entry.Customized {
			b.WriteString(customStyle.Render("custom"))
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(l.width, l.height, lipgloss.Left, lipgloss.Top, b.String())
}
