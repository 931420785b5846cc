package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ide-commands/cmd/interfaces"
	"ide-commands/cmd/palette"
)

// PaletteOverlay draws a command palette and feeds it keyboard input
type PaletteOverlay struct {
	// UI Components
	input   textinput.Model
	palette *palette.Palette

	// State
	items         []palette.Item
	selectedIndex int
	width         int
	height        int

	// Visual styles
	boxStyle       lipgloss.Style
	titleStyle     lipgloss.Style
	inputStyle     lipgloss.Style
	resultStyle    lipgloss.Style
	selectedStyle  lipgloss.Style
	highlightStyle lipgloss.Style
	groupStyle     lipgloss.Style
	emptyStyle     lipgloss.Style
}

// NewPaletteOverlay creates an overlay around p. It starts closed.
func NewPaletteOverlay(p *palette.Palette) *PaletteOverlay {
	ti := textinput.New()
	ti.Placeholder = "Type a command"
	ti.Prompt = "> "

	return &PaletteOverlay{
		input:   ti,
		palette: p,
		width:   60,
		height:  15,
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			MarginBottom(1),
		inputStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(40),
		resultStyle: lipgloss.NewStyle().
			Padding(0, 1),
		selectedStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#3C3C3C")).
			Foreground(lipgloss.Color("#FFFFFF")),
		highlightStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")),
		groupStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}),
	}
}

// Open shows the command level.
func (o *PaletteOverlay) Open() {
	o.palette.Open()
	o.reset()
}

// OpenGroup shows the options of a compound command.
func (o *PaletteOverlay) OpenGroup(named interfaces.NamedCommand) {
	o.palette.OpenGroup(named)
	o.reset()
}

// Close hides the overlay.
func (o *PaletteOverlay) Close() {
	o.palette.Close()
	o.input.Blur()
}

// IsOpen reports whether the overlay is showing.
func (o *PaletteOverlay) IsOpen() bool {
	return o.palette.IsOpen()
}

// Items returns the rows currently shown.
func (o *PaletteOverlay) Items() []palette.Item {
	return o.items
}

// Selected returns the highlighted row.
func (o *PaletteOverlay) Selected() (palette.Item, bool) {
	if o.selectedIndex < 0 || o.selectedIndex >= len(o.items) {
		return palette.Item{}, false
	}
	return o.items[o.selectedIndex], true
}

// SetSize sets the size of the overlay
func (o *PaletteOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height

	inputWidth := max(width-10, 30)
	o.inputStyle = o.inputStyle.Width(inputWidth)
}

// Refresh re-reads the rows, for when the registry changed underneath.
func (o *PaletteOverlay) Refresh() {
	o.items = o.palette.Items()
	if o.selectedIndex >= len(o.items) {
		o.selectedIndex = 0
	}
}

func (o *PaletteOverlay) reset() {
	o.input.SetValue("")
	o.input.Focus()
	o.selectedIndex = 0
	o.items = o.palette.Items()
}

// Update handles keyboard input while the overlay is open
func (o *PaletteOverlay) Update(msg tea.Msg) tea.Cmd {
	if !o.palette.IsOpen() {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			item, ok := o.Selected()
			if !ok {
				return nil
			}
			cmd := o.palette.Select(item)
			if o.palette.IsOpen() {
				o.reset()
			} else {
				o.input.Blur()
			}
			return cmd

		case tea.KeyEsc:
			if o.palette.Back() {
				o.reset()
				return nil
			}
			o.Close()
			return nil

		case tea.KeyUp:
			if o.selectedIndex > 0 {
				o.selectedIndex--
			} else if len(o.items) > 0 {
				o.selectedIndex = len(o.items) - 1
			}
			return nil

		case tea.KeyDown:
			if o.selectedIndex < len(o.items)-1 {
				o.selectedIndex++
			} else {
				o.selectedIndex = 0
			}
			return nil
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)

	if value := o.input.Value(); value != o.palette.Query() {
		o.palette.SetQuery(value)
		o.items = o.palette.Items()
		o.selectedIndex = 0
	}

	return cmd
}

func (o *PaletteOverlay) title() string {
	if o.palette.Mode() == palette.ModeOptions {
		return o.palette.Group().DisplayText
	}
	return "Command palette"
}

// highlight renders label with the runes matched by the query emphasized
func (o *PaletteOverlay) highlight(label string) string {
	matches := palette.Highlights(label, o.palette.Query())
	if len(matches) == 0 {
		return label
	}

	matched := make(map[int]bool, len(matches))
	for _, idx := range matches {
		matched[idx] = true
	}

	var sb strings.Builder
	for i, r := range []rune(label) {
		if matched[i] {
			sb.WriteString(o.highlightStyle.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// View renders the overlay
func (o *PaletteOverlay) View() string {
	var sb strings.Builder

	sb.WriteString(o.titleStyle.Render(o.title()))
	sb.WriteString("\n")

	sb.WriteString(o.inputStyle.Render(o.input.View()))
	sb.WriteString("\n")

	maxResults := max(o.height-5, 1)
	visible := o.items
	offset := 0
	if len(visible) > maxResults {
		// Keep the selection on screen.
		offset = max(0, o.selectedIndex-maxResults+1)
		visible = visible[offset : offset+maxResults]
	}

	for i, item := range visible {
		text := o.highlight(item.Label)
		if item.Kind == palette.KindGroup {
			text += o.groupStyle.Render(" ›")
		}
		if offset+i == o.selectedIndex {
			sb.WriteString(o.selectedStyle.Render(text))
		} else {
			sb.WriteString(o.resultStyle.Render(text))
		}
		sb.WriteString("\n")
	}

	if len(o.items) > maxResults {
		sb.WriteString(o.emptyStyle.Render(fmt.Sprintf("... and %d more results", len(o.items)-maxResults)))
		sb.WriteString("\n")
	} else if len(o.items) == 0 {
		sb.WriteString(o.emptyStyle.Render("No results found"))
		sb.WriteString("\n")
	}

	return o.boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
