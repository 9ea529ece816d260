package console

import (
	"strconv"
	"strings"
)

// Command is a main menu selection.
type Command int

const (
	CommandInvalid Command = iota
	CommandAdd
	CommandView
	CommandSearch
	CommandUpdate
	CommandDelete
	CommandExport
	CommandExit
)

var commandLabels = map[Command]string{
	CommandAdd:    "Add New Item",
	CommandView:   "View Inventory",
	CommandSearch: "Search Item by Name or ID",
	CommandUpdate: "Update Item",
	CommandDelete: "Delete Item",
	CommandExport: "Export Inventory to File",
	CommandExit:   "Exit",
}

// String returns the menu label.
func (c Command) String() string {
	if label, ok := commandLabels[c]; ok {
		return label
	}
	return "Invalid"
}

// ParseCommand maps the operator's input to a Command. Anything that is not
// a listed number yields CommandInvalid.
func ParseCommand(input string) Command {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < int(CommandAdd) || n > int(CommandExit) {
		return CommandInvalid
	}
	return Command(n)
}

// updateChoice is a selection in the update sub-menu.
type updateChoice int

const (
	updateInvalid updateChoice = iota
	updateQuantity
	updatePrice
	updateBoth
	updateDone
)

var updateLabels = []string{
	updateQuantity: "Update Quantity",
	updatePrice:    "Update Price",
	updateBoth:     "Update Both Quantity and Price",
	updateDone:     "Exit Update",
}

func parseUpdateChoice(input string) updateChoice {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < int(updateQuantity) || n > int(updateDone) {
		return updateInvalid
	}
	return updateChoice(n)
}
