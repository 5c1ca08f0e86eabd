package gpio

import (
	"errors"
	"testing"

	"github.com/sweeney/joypanel/internal/logic"
)

func TestFakeButtonsLevels(t *testing.T) {
	f := NewFakeButtons()

	if f.Asserted(logic.JoystickButton) || f.Asserted(logic.ActionButton) {
		t.Fatal("expected both buttons released initially")
	}

	f.Press(logic.ActionButton, 0)
	if !f.Asserted(logic.ActionButton) {
		t.Error("expected action button asserted after Press")
	}
	if f.Asserted(logic.JoystickButton) {
		t.Error("joystick button should stay released")
	}

	f.Release(logic.ActionButton)
	if f.Asserted(logic.ActionButton) {
		t.Error("expected action button released after Release")
	}
}

func TestFakeButtonsDeliversEdges(t *testing.T) {
	f := NewFakeButtons()

	var got []logic.Button
	var heldDuringEdge bool
	f.OnFallingEdge(func(b logic.Button) {
		got = append(got, b)
		heldDuringEdge = f.Asserted(b)
	})

	f.Press(logic.JoystickButton, 0)
	if len(got) != 1 || got[0] != logic.JoystickButton {
		t.Fatalf("expected one JOYSTICK edge, got %v", got)
	}
	if !heldDuringEdge {
		t.Error("level should read low while the edge is handled")
	}

	f.Release(logic.JoystickButton)
	if len(got) != 1 {
		t.Errorf("release must not deliver an edge, got %v", got)
	}
}

func TestFakeButtonsBounce(t *testing.T) {
	f := NewFakeButtons()
	edges := 0
	f.OnFallingEdge(func(logic.Button) { edges++ })

	f.Press(logic.ActionButton, 4)
	if edges != 5 {
		t.Errorf("expected 5 edges (1 + 4 bounce), got %d", edges)
	}
}

func TestFakeButtonsNoHandler(t *testing.T) {
	f := NewFakeButtons()
	f.Press(logic.ActionButton, 2) // must not panic
	if !f.Asserted(logic.ActionButton) {
		t.Error("expected level to change without a handler")
	}
}

func TestFakeButtonsClose(t *testing.T) {
	f := NewFakeButtons()
	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}

func TestFakeLED(t *testing.T) {
	f := NewFakeLED(true)
	if !f.On() {
		t.Error("expected initial level on")
	}

	f.Set(false)
	f.Set(true)
	f.Set(false)

	if f.On() {
		t.Error("expected LED off after last write")
	}
	w := f.Writes()
	if len(w) != 3 || w[0] || !w[1] || w[2] {
		t.Errorf("expected writes [false true false], got %v", w)
	}
}

func TestFakeLEDError(t *testing.T) {
	f := NewFakeLED(false)
	f.SetError = errors.New("simulated error")

	err := f.Set(true)
	if err == nil || err.Error() != "simulated error" {
		t.Errorf("unexpected error: %v", err)
	}
	if f.On() {
		t.Error("failed write must not change the level")
	}
}

func TestFakesSatisfyInterfaces(t *testing.T) {
	var _ Buttons = NewFakeButtons()
	var _ LED = NewFakeLED(false)
	var _ logic.Levels = NewFakeButtons()
	var _ logic.Output = NewFakeLED(false)
}
