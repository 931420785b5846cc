package palette

import (
	tea "github.com/charmbracelet/bubbletea"

	"ide-commands/cmd/interfaces"
	"ide-commands/log"
)

// Source is anything that can list the currently registered commands.
type Source interface {
	Enumerate() []interfaces.NamedCommand
}

// Mode is the level the palette is browsing.
type Mode int

const (
	ModeCommands Mode = iota
	ModeOptions
)

// Palette is the two-level command palette: first the enabled commands, then,
// after a compound command is chosen, that command's options.
type Palette struct {
	source Source

	open    bool
	mode    Mode
	query   string
	group   interfaces.NamedCommand
	options []Item
}

// New creates a closed palette listing the commands of source.
func New(source Source) *Palette {
	return &Palette{source: source}
}

// Open shows the command level with an empty query.
func (p *Palette) Open() {
	p.open = true
	p.enterCommands()
}

// OpenGroup shows the options of a compound command directly, as when its
// shortcut is pressed.
func (p *Palette) OpenGroup(named interfaces.NamedCommand) {
	p.open = true
	p.enterOptions(named)
}

// Close hides the palette and resets it.
func (p *Palette) Close() {
	p.open = false
	p.enterCommands()
}

// IsOpen reports whether the palette is showing.
func (p *Palette) IsOpen() bool {
	return p.open
}

// Mode returns the level being browsed.
func (p *Palette) Mode() Mode {
	return p.mode
}

// Group returns the compound command whose options are listed. It is only
// meaningful in ModeOptions.
func (p *Palette) Group() interfaces.NamedCommand {
	return p.group
}

// SetQuery replaces the filter text.
func (p *Palette) SetQuery(query string) {
	p.query = query
}

// Query returns the filter text.
func (p *Palette) Query() string {
	return p.query
}

// Items returns the rows for the current level and query.
func (p *Palette) Items() []Item {
	if p.mode == ModeOptions {
		return Filter(p.options, p.query, label)
	}

	var items []Item
	for _, named := range p.source.Enumerate() {
		if named.Command == nil || !named.Enabled {
			continue
		}
		items = append(items, commandItem(named))
	}
	return Filter(items, p.query, label)
}

// Select acts on a row. Commands and options run and close the palette;
// groups switch to their options and keep it open.
func (p *Palette) Select(item Item) tea.Cmd {
	switch item.Kind {
	case KindGroup:
		p.enterOptions(interfaces.NamedCommand{ID: item.ID, Command: item.Command})
		return nil
	case KindCommand:
		log.InfoLog.Printf("palette runs %s", item.ID)
		p.Close()
		return item.Command.Run()
	case KindOption:
		log.InfoLog.Printf("palette runs option %q of %s", item.Label, item.ID)
		p.Close()
		return item.Option.Run()
	default:
		return nil
	}
}

// Back leaves the option level. It reports false at the command level.
func (p *Palette) Back() bool {
	if p.mode != ModeOptions {
		return false
	}
	p.enterCommands()
	return true
}

func (p *Palette) enterCommands() {
	p.mode = ModeCommands
	p.query = ""
	p.group = interfaces.NamedCommand{}
	p.options = nil
}

func (p *Palette) enterOptions(named interfaces.NamedCommand) {
	p.mode = ModeOptions
	p.query = ""
	p.group = named
	p.options = nil
	if named.Command == nil || named.Options == nil {
		return
	}
	for _, option := range named.Options() {
		p.options = append(p.options, optionItem(named.ID, option))
	}
}
