package overlay

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay is a single-line prompt, such as the project rename box.
// While it is focused the shortcut listener treats the user as typing.
type TextInputOverlay struct {
	input      textinput.Model
	Title      string
	FocusIndex int // 0 for text input, 1 for enter button
	Submitted  bool
	Canceled   bool
	OnSubmit   func(value string) tea.Cmd
	OnCancel   func()
	width      int
}

// NewTextInputOverlay creates a new text input overlay with the given title and initial value.
func NewTextInputOverlay(title string, initialValue string) *TextInputOverlay {
	ti := textinput.New()
	ti.SetValue(initialValue)
	ti.CursorEnd()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Focus()

	return &TextInputOverlay{
		input: ti,
		Title: title,
		width: 50,
	}
}

func (t *TextInputOverlay) SetSize(width, height int) {
	t.width = width
}

// Init initializes the text input overlay model
func (t *TextInputOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// View renders the model's view
func (t *TextInputOverlay) View() string {
	return t.Render()
}

// Focused reports whether keystrokes go to the text field.
func (t *TextInputOverlay) Focused() bool {
	return t.FocusIndex == 0 && !t.Submitted && !t.Canceled
}

func (t *TextInputOverlay) toggleFocus() {
	t.FocusIndex = (t.FocusIndex + 1) % 2
	if t.FocusIndex == 0 {
		t.input.Focus()
	} else {
		t.input.Blur()
	}
}

// HandleKeyPress processes a key press. The bool reports that the overlay
// should be closed.
func (t *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		t.toggleFocus()
		return nil, false
	case tea.KeyEsc:
		t.Canceled = true
		if t.OnCancel != nil {
			t.OnCancel()
		}
		return nil, true
	case tea.KeyEnter:
		t.Submitted = true
		if t.OnSubmit != nil {
			return t.OnSubmit(t.GetValue()), true
		}
		return nil, true
	default:
		if t.FocusIndex != 0 {
			return nil, false
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd, false
	}
}

// GetValue returns the current value of the text input.
func (t *TextInputOverlay) GetValue() string {
	return t.input.Value()
}

// Render renders the text input overlay.
func (t *TextInputOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		MarginBottom(1)

	buttonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	focusedButtonStyle := buttonStyle.
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("0"))

	t.input.Width = max(t.width-6, 10) // Account for padding and borders

	content := titleStyle.Render(t.Title) + "\n"
	content += t.input.View() + "\n\n"

	enterButton := " Enter "
	if t.FocusIndex == 1 {
		enterButton = focusedButtonStyle.Render(enterButton)
	} else {
		enterButton = buttonStyle.Render(enterButton)
	}
	content += enterButton

	return style.Render(content)
}
