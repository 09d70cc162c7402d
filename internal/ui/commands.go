package ui

import (
	"fmt"
	"time"
)

// Command is a user request surfaced by the keyboard or the panel.
type Command int

const (
	CommandNone Command = iota
	CommandToggleRun
	CommandStep
	CommandRandomize
	CommandReset
	CommandToggleGrid
)

// PanelCommands lists the panel buttons from top to bottom.
var PanelCommands = []Command{
	CommandToggleRun,
	CommandStep,
	CommandRandomize,
	CommandReset,
	CommandToggleGrid,
}

// Status is the simulation state shown below the buttons.
type Status struct {
	Running    bool
	ShowGrid   bool
	Generation int
	Population int
	Interval   time.Duration
}

// Label returns the button caption for cmd given the current status.
func Label(cmd Command, st Status) string {
	switch cmd {
	case CommandToggleRun:
		if st.Running {
			return "Stop"
		}
		return "Start"
	case CommandStep:
		return "Step"
	case CommandRandomize:
		return "Random"
	case CommandReset:
		return "Reset"
	case CommandToggleGrid:
		if st.ShowGrid {
			return "Hide Grid"
		}
		return "Show Grid"
	default:
		return ""
	}
}

// Lines formats the status block.
func (st Status) Lines() []string {
	state := "stopped"
	if st.Running {
		state = "running"
	}
	return []string{
		state,
		fmt.Sprintf("gen %d", st.Generation),
		fmt.Sprintf("pop %d", st.Population),
		fmt.Sprintf("%dms", st.Interval.Milliseconds()),
	}
}
