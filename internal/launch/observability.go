package launch

import (
	"fmt"
	"log"
	"time"
)

// EventType classifies a sequencer event.
type EventType string

const (
	// EventStepStarted indicates a step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a step finished successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a step failed.
	EventStepFailed EventType = "step.failed"
	// EventStepSkipped indicates a step was skipped as not applicable.
	EventStepSkipped EventType = "step.skipped"
	// EventWarning indicates a best-effort step failure the run survived.
	EventWarning EventType = "warning"
)

// Event is a structured sequencer event.
type Event struct {
	Type      EventType
	Step      string
	Key       string
	Message   string
	Err       error
	Timestamp time.Time
}

// Observer receives progress from the sequencer. Implementations must
// tolerate being called from the sequencing goroutine only; the
// sequencer itself is single-threaded.
type Observer interface {
	// Printf logs a free-form status line.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)
}

// ConsoleObserver logs events through the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver returns an Observer writing to the default logger.
func NewConsoleObserver() *ConsoleObserver { return &ConsoleObserver{} }

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	switch event.Type {
	case EventStepFailed:
		log.Printf("[%s] failed: %v", event.Step, event.Err)
	case EventStepSkipped:
		log.Printf("[%s] skipped: %s", event.Step, event.Message)
	case EventWarning:
		log.Printf("[%s] warning: %s", event.Step, event.Message)
	default:
		msg := event.Message
		if msg == "" {
			msg = string(event.Type)
		}
		log.Printf("[%s] %s", event.Step, msg)
	}
}

// fmtStepError wraps a step failure with its name for the caller.
func fmtStepError(step string, err error) error {
	return fmt.Errorf("%s step failed: %w", step, err)
}
