package launch

import (
	"errors"
	"fmt"
	"time"
)

// ErrSkipped is returned by a step's Run to indicate the step does not
// apply to this session. The pipeline records it and moves on.
var ErrSkipped = errors.New("step skipped")

// Step is one unit of the launch sequence.
type Step interface {
	// Name is the human-readable step title.
	Name() string

	// Key identifies the step for observers.
	Key() string

	// Critical steps halt the run on failure; non-critical steps only
	// record a warning.
	Critical() bool

	// Run executes the step against the shared context.
	Run(ctx *Context) error
}

// RunSteps executes steps in order. It returns the first critical
// failure, wrapped with the step name; best-effort failures are recorded
// on the state as warnings and do not stop the run.
func RunSteps(ctx *Context, steps []Step) error {
	start := time.Now()
	ctx.Observer.Printf("Starting launch sequence with %d steps...", len(steps))

	for i, step := range steps {
		stepStart := time.Now()
		label := fmt.Sprintf("%s (%d/%d)", step.Name(), i+1, len(steps))

		ctx.Observer.Event(Event{Type: EventStepStarted, Step: step.Name(), Key: step.Key(), Timestamp: stepStart})

		err := step.Run(ctx)
		switch {
		case err == nil:
			ctx.Observer.Event(Event{Type: EventStepCompleted, Step: step.Name(), Key: step.Key(),
				Message: fmt.Sprintf("completed in %v", time.Since(stepStart).Round(time.Millisecond)),
				Timestamp: time.Now()})

		case errors.Is(err, ErrSkipped):
			msg := err.Error()
			ctx.Observer.Event(Event{Type: EventStepSkipped, Step: step.Name(), Key: step.Key(),
				Message: msg, Timestamp: time.Now()})

		case step.Critical():
			ctx.Observer.Event(Event{Type: EventStepFailed, Step: step.Name(), Key: step.Key(),
				Err: err, Timestamp: time.Now()})
			return fmtStepError(step.Name(), err)

		default:
			// Best-effort step: record and continue.
			msg := fmt.Sprintf("%s: %v (continuing)", label, err)
			ctx.State.Warn(msg)
			ctx.Observer.Event(Event{Type: EventWarning, Step: step.Name(), Key: step.Key(),
				Message: err.Error(), Err: err, Timestamp: time.Now()})
		}
	}

	ctx.Observer.Printf("Launch sequence completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
