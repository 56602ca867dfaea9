package toggler

import (
	"sort"
	"strings"
)

// Command IDs registered with a host.
const (
	CommandToggleCurrent = "toggle-current"
	CommandToggleAll     = "toggle-all"
)

// Command is a host-invocable toggle operation.
type Command struct {
	ID   string
	Name string
	Run  func(*Toggler, Editor) Result
}

var builtinCommands = map[string]Command{
	CommandToggleCurrent: {
		ID:   CommandToggleCurrent,
		Name: "Toggle embed on current or selected links",
		Run:  (*Toggler).ToggleCurrent,
	},
	CommandToggleAll: {
		ID:   CommandToggleAll,
		Name: "Toggle embed on all links in document",
		Run:  (*Toggler).ToggleAll,
	},
}

// AvailableCommands returns the IDs of the built-in commands.
func AvailableCommands() []string {
	ids := make([]string, 0, len(builtinCommands))
	for id := range builtinCommands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CommandByID returns a built-in command by ID.
func CommandByID(id string) (Command, bool) {
	cmd, ok := builtinCommands[strings.ToLower(strings.TrimSpace(id))]
	return cmd, ok
}

// Run executes the command identified by id against ed.
func (t *Toggler) Run(id string, ed Editor) (Result, bool) {
	cmd, ok := CommandByID(id)
	if !ok {
		return Result{}, false
	}
	return cmd.Run(t, ed), true
}
