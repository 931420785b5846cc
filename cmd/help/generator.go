package help

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"ide-commands/cmd"
	"ide-commands/cmd/interfaces"
	"ide-commands/cmd/shortcut"
	"ide-commands/keys"
)

// Generator renders shortcut references from the effective shortcut map
type Generator struct {
	table    interfaces.CommandTable
	m        shortcut.Map
	defaults shortcut.Map
	platform keys.Platform

	// Width limits each rendered line; zero means no limit.
	Width int

	// Styles for formatting help content
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	keyStyle    lipgloss.Style
	descStyle   lipgloss.Style
	sepStyle    lipgloss.Style
	warnStyle   lipgloss.Style
}

// NewGenerator creates a new help generator
func NewGenerator(table interfaces.CommandTable, m, defaults shortcut.Map, platform keys.Platform) *Generator {
	return &Generator{
		table:       table,
		m:           m,
		defaults:    defaults,
		platform:    platform,
		titleStyle:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4")),
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9")),
		keyStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00")),
		descStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		sepStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C")),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
	}
}

// GenerateReference creates the full shortcut reference, grouped by area.
// Commands without a shortcut are listed only when includeUnbound is set.
func (g *Generator) GenerateReference(includeUnbound bool) string {
	entries := shortcut.Entries(g.m, g.defaults, g.table, g.platform)

	groups := make(map[interfaces.Area][]shortcut.Entry)
	keyWidth := 0
	for _, entry := range entries {
		if entry.Shortcut == keys.NoShortcut && !includeUnbound {
			continue
		}
		groups[entry.Area] = append(groups[entry.Area], entry)
		keyWidth = max(keyWidth, runewidth.StringWidth(entry.Display))
	}

	areas := make([]interfaces.Area, 0, len(groups))
	for area := range groups {
		areas = append(areas, area)
	}
	sort.Slice(areas, func(i, j int) bool {
		return cmd.GetAreaPriority(areas[i]) < cmd.GetAreaPriority(areas[j])
	})

	var content strings.Builder
	content.WriteString(g.titleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n\n")

	if len(areas) == 0 {
		content.WriteString(g.descStyle.Render("No shortcuts are bound"))
		content.WriteString("\n")
	}

	for i, area := range areas {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(g.formatArea(area, groups[area], keyWidth))
	}

	if conflicts := shortcut.Conflicts(g.m); len(conflicts) > 0 {
		content.WriteString("\n")
		content.WriteString(g.headerStyle.Render("Conflicts:"))
		content.WriteString("\n")
		for _, conflict := range conflicts {
			content.WriteString("  ")
			content.WriteString(g.warnStyle.Render(g.describeConflict(conflict)))
			content.WriteString("\n")
		}
	}

	return content.String()
}

// GenerateStatusLine creates the bottom status line from the commands a
// registry currently offers.
func (g *Generator) GenerateStatusLine(commands []interfaces.NamedCommand, maxItems int) string {
	var parts []string
	for _, named := range commands {
		if maxItems > 0 && len(parts) == maxItems {
			break
		}
		if named.Command == nil || !named.Enabled {
			continue
		}
		s := g.m[named.ID]
		if s == keys.NoShortcut {
			continue
		}
		desc := g.truncateDescription(named.DisplayText, 18)
		parts = append(parts, fmt.Sprintf("%s %s",
			g.keyStyle.Render(keys.DisplayString(s, g.platform)),
			g.descStyle.Render(desc)))
	}

	return strings.Join(parts, g.sepStyle.Render(" • "))
}

// ValidateShortcuts reports problems with the effective map.
func (g *Generator) ValidateShortcuts() []string {
	var issues []string

	for _, conflict := range shortcut.Conflicts(g.m) {
		issues = append(issues, g.describeConflict(conflict))
	}

	for _, id := range g.m.SortedIDs() {
		meta, ok := g.table.Metadata(id)
		if !ok {
			issues = append(issues, fmt.Sprintf("Shortcut bound to unknown command %s", id))
			continue
		}
		if meta.NoShortcut && g.m[id] != keys.NoShortcut {
			issues = append(issues, fmt.Sprintf("Command %s cannot have a shortcut", id))
		}
	}

	return issues
}

// formatArea creates formatted output for one area
func (g *Generator) formatArea(area interfaces.Area, entries []shortcut.Entry, keyWidth int) string {
	var content strings.Builder

	content.WriteString(g.headerStyle.Render(string(area) + ":"))
	content.WriteString("\n")

	for _, entry := range entries {
		keyText := entry.Display
		if keyText == "" {
			keyText = "-"
		}
		padding := strings.Repeat(" ", max(0, keyWidth-runewidth.StringWidth(keyText)))

		desc := entry.Command
		if g.Width > 0 {
			// "  " + key + padding + " - "
			desc = g.truncateDescription(desc, g.Width-keyWidth-5)
		}

		line := fmt.Sprintf("  %s%s - %s",
			g.keyStyle.Render(keyText),
			padding,
			g.descStyle.Render(desc))

		if entry.Customized {
			line += g.warnStyle.Render(" (custom)")
		}

		content.WriteString(line)
		content.WriteString("\n")
	}

	return content.String()
}

func (g *Generator) describeConflict(conflict shortcut.Conflict) string {
	names := make([]string, 0, len(conflict.Commands))
	for _, id := range conflict.Commands {
		if meta, ok := g.table.Metadata(id); ok {
			names = append(names, meta.DisplayText)
		} else {
			names = append(names, string(id))
		}
	}
	return fmt.Sprintf("%s is bound to: %s",
		keys.DisplayString(conflict.Shortcut, g.platform), strings.Join(names, ", "))
}

// truncateDescription truncates a description to fit in the given width
func (g *Generator) truncateDescription(desc string, maxWidth int) string {
	if maxWidth <= 3 || runewidth.StringWidth(desc) <= maxWidth {
		return desc
	}
	return truncate.StringWithTail(desc, uint(maxWidth), "...")
}
