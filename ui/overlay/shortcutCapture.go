package overlay

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ide-commands/cmd/interfaces"
	"ide-commands/cmd/shortcut"
	"ide-commands/keys"
)

// ShortcutCaptureOverlay records the next key combination pressed and offers
// it as the new shortcut of one command. Backspace clears the shortcut.
type ShortcutCaptureOverlay struct {
	id       interfaces.CommandID
	meta     interfaces.CommandMetadata
	table    interfaces.CommandTable
	m        shortcut.Map
	platform keys.Platform

	pending   keys.Shortcut
	captured  bool
	partial   string
	conflicts []interfaces.CommandID
	err       error

	Submitted bool
	Canceled  bool
	OnSubmit  func(id interfaces.CommandID, s keys.Shortcut) tea.Cmd
	OnCancel  func()
}

// NewShortcutCaptureOverlay starts a capture for id against the effective map.
func NewShortcutCaptureOverlay(id interfaces.CommandID, table interfaces.CommandTable, m shortcut.Map, platform keys.Platform) *ShortcutCaptureOverlay {
	meta, _ := table.Metadata(id)
	return &ShortcutCaptureOverlay{
		id:       id,
		meta:     meta,
		table:    table,
		m:        m,
		platform: platform,
		pending:  m[id],
	}
}

// Pending returns the shortcut that Enter would save.
func (c *ShortcutCaptureOverlay) Pending() keys.Shortcut {
	return c.pending
}

// Conflicts returns the other commands already bound to Pending.
func (c *ShortcutCaptureOverlay) Conflicts() []interfaces.CommandID {
	return c.conflicts
}

// Err explains why the last key press was not accepted.
func (c *ShortcutCaptureOverlay) Err() error {
	return c.err
}

// HandleKeyPress records a key press. The bool reports that the overlay
// should be closed.
func (c *ShortcutCaptureOverlay) HandleKeyPress(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		c.Canceled = true
		if c.OnCancel != nil {
			c.OnCancel()
		}
		return nil, true
	case tea.KeyEnter:
		if c.meta.NoShortcut {
			c.err = fmt.Errorf("%s cannot have a shortcut", c.id)
			return nil, false
		}
		c.Submitted = true
		if c.OnSubmit != nil {
			return c.OnSubmit(c.id, c.pending), true
		}
		return nil, true
	case tea.KeyBackspace, tea.KeyDelete:
		c.set(keys.NoShortcut)
		return nil, false
	}

	ev := keys.FromTeaKey(msg)
	if s, ok := keys.EncodeEvent(ev); ok {
		c.set(s)
		return nil, false
	}

	c.partial = keys.PartialShortcut(ev)
	c.err = nil
	if c.partial != "" {
		if _, err := keys.ParseShortcut(c.partial); err != nil {
			c.err = err
		}
	}
	return nil, false
}

func (c *ShortcutCaptureOverlay) set(s keys.Shortcut) {
	c.pending = s
	c.captured = true
	c.partial = ""
	c.err = nil
	c.conflicts = shortcut.ConflictsWith(c.m, c.id, s)
}

func (c *ShortcutCaptureOverlay) describe(s keys.Shortcut) string {
	if s == keys.NoShortcut {
		return "none"
	}
	return keys.DisplayString(s, c.platform)
}

// View renders the overlay
func (c *ShortcutCaptureOverlay) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		MarginBottom(1)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Shortcut for " + c.meta.DisplayText))
	sb.WriteString("\n")

	sb.WriteString("Current: ")
	sb.WriteString(keyStyle.Render(c.describe(c.m[c.id])))
	sb.WriteString("\n")

	sb.WriteString("New:     ")
	switch {
	case c.partial != "":
		sb.WriteString(keyStyle.Render(keys.DisplayString(keys.Shortcut(c.partial), c.platform)))
	case c.captured:
		sb.WriteString(keyStyle.Render(c.describe(c.pending)))
	default:
		sb.WriteString(hintStyle.Render("press a key combination"))
	}
	sb.WriteString("\n")

	if c.err != nil {
		sb.WriteString(errStyle.Render(captureErrorText(c.err)))
		sb.WriteString("\n")
	}

	if len(c.conflicts) > 0 {
		names := make([]string, 0, len(c.conflicts))
		for _, id := range c.conflicts {
			if meta, ok := c.table.Metadata(id); ok {
				names = append(names, meta.DisplayText)
			} else {
				names = append(names, string(id))
			}
		}
		sb.WriteString(warnStyle.Render("Also used by: " + strings.Join(names, ", ")))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("enter save • backspace clear • esc cancel"))

	return style.Render(sb.String())
}

func captureErrorText(err error) string {
	switch {
	case errors.Is(err, keys.ErrReserved):
		return "This shortcut is reserved"
	case errors.Is(err, keys.ErrModifierRequired):
		return "This key needs Ctrl or Alt"
	case errors.Is(err, keys.ErrEmptyShortcut):
		return "Add a key after the modifiers"
	default:
		return err.Error()
	}
}
