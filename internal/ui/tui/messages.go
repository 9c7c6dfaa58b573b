// Package tui provides a Bubble Tea terminal UI for the launch sequence.
package tui

import "github.com/mintforge/mintforge/internal/launch"

// StepMsg reports progress of a launch step.
type StepMsg struct {
	Key     string
	Type    launch.EventType
	Message string
	Err     error
}

// TickMsg is sent periodically to advance the spinner.
type TickMsg struct{}

// ErrMsg carries a run-level error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the run is complete.
type DoneMsg struct{}
