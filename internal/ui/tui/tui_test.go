package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintforge/mintforge/internal/launch"
)

func newTestModel() Model {
	return NewModel("Example Coin", "EXC", "devnet", launch.DefaultSteps())
}

func TestNewModelCoversAllSteps(t *testing.T) {
	m := newTestModel()
	if len(m.Steps) != 6 {
		t.Fatalf("len(Steps) = %d, want 6", len(m.Steps))
	}
	if m.Steps[0].Key != launch.KeyCreateMint {
		t.Errorf("first step key = %q", m.Steps[0].Key)
	}
	for _, s := range m.Steps {
		if s.Status != StatusPending {
			t.Errorf("step %s starts as %q, want pending", s.Key, s.Status)
		}
	}
}

func TestModelAppliesStepMessages(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(StepMsg{Key: launch.KeyCreateMint, Type: launch.EventStepStarted})
	m = updated.(Model)
	if m.Steps[0].Status != StatusActive {
		t.Errorf("status = %q, want active", m.Steps[0].Status)
	}

	updated, _ = m.Update(StepMsg{Key: launch.KeyCreateMint, Type: launch.EventStepCompleted, Message: "completed in 2s"})
	m = updated.(Model)
	if m.Steps[0].Status != StatusDone {
		t.Errorf("status = %q, want done", m.Steps[0].Status)
	}

	updated, _ = m.Update(StepMsg{Key: launch.KeyLockIssuance, Type: launch.EventWarning, Message: "authority mismatch"})
	m = updated.(Model)
	if m.Steps[3].Status != StatusWarned {
		t.Errorf("status = %q, want warned", m.Steps[3].Status)
	}

	updated, _ = m.Update(StepMsg{Key: launch.KeyTransferSupply, Type: launch.EventStepSkipped, Message: "recipient is the creator"})
	m = updated.(Model)
	if m.Steps[5].Status != StatusSkipped {
		t.Errorf("status = %q, want skipped", m.Steps[5].Status)
	}
}

func TestModelQuitsOnError(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(ErrMsg{Err: errors.New("boom")})
	m = updated.(Model)
	if m.Err == nil {
		t.Error("Err not recorded")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelQuitsOnDone(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(DoneMsg{})
	m = updated.(Model)
	if !m.Done {
		t.Error("Done not recorded")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestViewRendersSteps(t *testing.T) {
	m := newTestModel()
	m.Steps[0].Status = StatusDone
	m.Steps[1].Status = StatusActive

	out := m.View()
	if !strings.Contains(out, "Example Coin") {
		t.Error("view missing token name")
	}
	if !strings.Contains(out, "Create token") {
		t.Error("view missing step names")
	}
	if !strings.Contains(out, checkMark) {
		t.Error("view missing done marker")
	}
}
