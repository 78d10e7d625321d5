package shell

// Command is a main menu entry. Input is parsed into a Command once and
// dispatched with a switch, so the compiler can see every variant.
type Command int

const (
	CommandQuit Command = iota
	CommandNewOrder
	CommandFindOrder
	CommandListDroppedOff
	CommandListReadyForPickup
	CommandListPickedUp
	CommandListAll
)

// ParseCommand maps a menu input line to a Command. The second result is
// false for input that matches no menu entry.
func ParseCommand(input string) (Command, bool) {
	switch input {
	case "0", "q", "Q":
		return CommandQuit, true
	case "1":
		return CommandNewOrder, true
	case "2":
		return CommandFindOrder, true
	case "3":
		return CommandListDroppedOff, true
	case "4":
		return CommandListReadyForPickup, true
	case "5":
		return CommandListPickedUp, true
	case "6":
		return CommandListAll, true
	}
	return 0, false
}

// EditCommand is an entry of the single-order submenu.
type EditCommand int

const (
	EditBack EditCommand = iota
	EditMarkReadyForPickup
	EditMarkPickedUp
	EditViewCustomer
)

func ParseEditCommand(input string) (EditCommand, bool) {
	switch input {
	case "0", "b", "B":
		return EditBack, true
	case "1":
		return EditMarkReadyForPickup, true
	case "2":
		return EditMarkPickedUp, true
	case "3":
		return EditViewCustomer, true
	}
	return 0, false
}
