package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintforge/mintforge/internal/launch"
)

// StepStatus tracks the display state of one launch step.
type StepStatus string

const (
	StatusPending StepStatus = "pending"
	StatusActive  StepStatus = "active"
	StatusDone    StepStatus = "done"
	StatusFailed  StepStatus = "failed"
	StatusWarned  StepStatus = "warned"
	StatusSkipped StepStatus = "skipped"
)

// StepView is one row in the step list.
type StepView struct {
	Key    string
	Name   string
	Status StepStatus
	Detail string
}

// Model is the Bubble Tea model for the launch run.
type Model struct {
	TokenName string
	Symbol    string
	Network   string

	Steps []StepView

	StartTime    time.Time
	SpinnerFrame int

	Width  int
	Height int
	Err    error
	Done   bool
}

// NewModel creates a model covering the given launch steps.
func NewModel(tokenName, symbol, network string, steps []launch.Step) Model {
	views := make([]StepView, len(steps))
	for i, s := range steps {
		views[i] = StepView{Key: s.Key(), Name: s.Name(), Status: StatusPending}
	}
	return Model{
		TokenName: tokenName,
		Symbol:    symbol,
		Network:   network,
		Steps:     views,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StepMsg:
		m.applyStep(msg)

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func (m *Model) applyStep(msg StepMsg) {
	for i := range m.Steps {
		if m.Steps[i].Key != msg.Key {
			continue
		}
		switch msg.Type {
		case launch.EventStepStarted:
			m.Steps[i].Status = StatusActive
		case launch.EventStepCompleted:
			m.Steps[i].Status = StatusDone
			m.Steps[i].Detail = msg.Message
		case launch.EventStepSkipped:
			m.Steps[i].Status = StatusSkipped
			m.Steps[i].Detail = msg.Message
		case launch.EventWarning:
			m.Steps[i].Status = StatusWarned
			m.Steps[i].Detail = msg.Message
		case launch.EventStepFailed:
			m.Steps[i].Status = StatusFailed
			if msg.Err != nil {
				m.Steps[i].Detail = msg.Err.Error()
			}
		}
		return
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
