package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintforge/mintforge/internal/launch"
)

// programObserver forwards launch events into a running Bubble Tea
// program.
type programObserver struct {
	p *tea.Program
}

// Printf implements launch.Observer. Free-form lines are dropped in TUI
// mode; the step list carries the same information.
func (o *programObserver) Printf(string, ...interface{}) {}

// Event implements launch.Observer.
func (o *programObserver) Event(e launch.Event) {
	o.p.Send(StepMsg{Key: e.Key, Type: e.Type, Message: e.Message, Err: e.Err})
}

// Run wraps a launch run with the step-list TUI. runFn receives the
// observer to attach to the launch context and executes the sequence in
// a background goroutine; its error, if any, ends the program.
func Run(tokenName, symbol, network string, steps []launch.Step, runFn func(launch.Observer) error) error {
	m := NewModel(tokenName, symbol, network, steps)
	p := tea.NewProgram(m)

	errCh := make(chan error, 1)
	go func() {
		err := runFn(&programObserver{p: p})
		errCh <- err
		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	if !fm.Done {
		// User quit early; report the run outcome if it is already in.
		select {
		case err := <-errCh:
			return err
		default:
			return fmt.Errorf("launch display interrupted; the run may still be in flight")
		}
	}
	return nil
}
