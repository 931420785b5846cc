package palette

import (
	"ide-commands/cmd/interfaces"
)

// Kind tags the variant held by an Item.
type Kind int

const (
	// KindCommand runs its command when chosen.
	KindCommand Kind = iota
	// KindGroup is a compound command; choosing it lists its options.
	KindGroup
	// KindOption is one option of the group being browsed.
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindGroup:
		return "group"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// Item is one palette row. Command is set for KindCommand and KindGroup,
// Option for KindOption.
type Item struct {
	Kind    Kind
	ID      interfaces.CommandID
	Label   string
	Command *interfaces.Command
	Option  *interfaces.CommandOption
}

func label(item Item) string {
	return item.Label
}

func commandItem(named interfaces.NamedCommand) Item {
	kind := KindCommand
	if named.IsCompound() {
		kind = KindGroup
	}
	return Item{Kind: kind, ID: named.ID, Label: named.DisplayText, Command: named.Command}
}

func optionItem(group interfaces.CommandID, option interfaces.CommandOption) Item {
	return Item{Kind: KindOption, ID: group, Label: option.Text, Option: &option}
}
