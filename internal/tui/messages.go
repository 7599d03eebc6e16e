package tui

import "github.com/april2040/singularity-calendar/internal/calendar"

// stateChangedMsg is sent whenever the coordinator reports a change.
type stateChangedMsg struct{}

type loadedMsg struct {
	entry calendar.Entry
}

type refreshDoneMsg struct{}
