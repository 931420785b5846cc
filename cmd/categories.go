package cmd

import (
	"ide-commands/cmd/interfaces"
)

// AreaOrder defines the display order for shortcut references
var AreaOrder = []interfaces.Area{
	interfaces.AreaGeneral,
	interfaces.AreaIDE,
	interfaces.AreaProject,
	interfaces.AreaScene,
	interfaces.AreaEvents,
}

// GetAreaPriority returns the display priority for an area (lower = higher priority)
func GetAreaPriority(area interfaces.Area) int {
	for i, a := range AreaOrder {
		if a == area {
			return i
		}
	}
	return len(AreaOrder) // Unknown areas go to the end
}
