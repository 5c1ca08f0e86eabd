package logic

import (
	"errors"
	"testing"
)

type fakeLevels struct {
	joystick bool
	action   bool
}

func (f *fakeLevels) Asserted(b Button) bool {
	if b == JoystickButton {
		return f.joystick
	}
	return f.action
}

type fakeOutput struct {
	writes []bool
	err    error
}

func (f *fakeOutput) Set(on bool) error {
	f.writes = append(f.writes, on)
	return f.err
}

type fakeClock struct {
	ms uint32
}

func (c *fakeClock) now() uint32 { return c.ms }

// setupDetector returns a detector whose clock starts well past the boot-time
// window, with every flag set to the power-on defaults.
func setupDetector(t *testing.T) (*EdgeDetector, *State, *fakeLevels, *fakeOutput, *fakeClock) {
	t.Helper()
	state := NewState()
	levels := &fakeLevels{}
	green := &fakeOutput{}
	clock := &fakeClock{ms: 10_000}
	return NewEdgeDetector(state, levels, green, clock.now), state, levels, green, clock
}

func TestNewEdgeDetector(t *testing.T) {
	d, _, _, _, _ := setupDetector(t)
	if d.window != 200 {
		t.Errorf("expected window 200ms, got %d", d.window)
	}
	if d.lastAccepted != 0 {
		t.Errorf("expected lastAccepted 0, got %d", d.lastAccepted)
	}
}

func TestJoystickEdgeFlipsGreenAndBorder(t *testing.T) {
	d, state, levels, green, _ := setupDetector(t)
	before := state.Flags()

	levels.joystick = true
	got := d.OnFallingEdge(JoystickButton)
	if got != ToggleGreenBorder {
		t.Fatalf("expected GREEN_BORDER, got %s", got)
	}

	after := state.Flags()
	if after.GreenLED == before.GreenLED {
		t.Error("expected green LED flag to flip")
	}
	if after.Border == before.Border {
		t.Error("expected border flag to flip")
	}
	if after.RedPWM != before.RedPWM || after.BluePWM != before.BluePWM {
		t.Errorf("red/blue must not change: before %+v, after %+v", before, after)
	}

	if len(green.writes) != 1 {
		t.Fatalf("expected 1 green LED write, got %d", len(green.writes))
	}
	if green.writes[0] != after.GreenLED {
		t.Errorf("expected green LED driven to %v, got %v", after.GreenLED, green.writes[0])
	}
}

func TestActionEdgeFlipsRedAndBlue(t *testing.T) {
	d, state, levels, green, _ := setupDetector(t)
	before := state.Flags()

	levels.action = true
	got := d.OnFallingEdge(ActionButton)
	if got != ToggleRedBlue {
		t.Fatalf("expected RED_BLUE, got %s", got)
	}

	after := state.Flags()
	if after.RedPWM == before.RedPWM || after.BluePWM == before.BluePWM {
		t.Errorf("expected red and blue to flip: before %+v, after %+v", before, after)
	}
	if after.GreenLED != before.GreenLED || after.Border != before.Border {
		t.Errorf("green/border must not change: before %+v, after %+v", before, after)
	}
	if len(green.writes) != 0 {
		t.Errorf("expected no green LED writes, got %v", green.writes)
	}
}

func TestEdgeWithinWindowIsDiscarded(t *testing.T) {
	for _, elapsed := range []uint32{0, 1, 50, 150, 199} {
		d, state, levels, green, clock := setupDetector(t)
		levels.action = true

		if got := d.OnFallingEdge(ActionButton); got != ToggleRedBlue {
			t.Fatalf("elapsed %d: first edge expected RED_BLUE, got %s", elapsed, got)
		}
		before := state.Flags()

		clock.ms += elapsed
		if got := d.OnFallingEdge(ActionButton); got != ToggleNone {
			t.Errorf("elapsed %d: expected bounce to be discarded, got %s", elapsed, got)
		}
		if state.Flags() != before {
			t.Errorf("elapsed %d: flags changed on bounce: %+v -> %+v", elapsed, before, state.Flags())
		}
		if d.lastAccepted != 10_000 {
			t.Errorf("elapsed %d: bounce must not move the window, lastAccepted=%d", elapsed, d.lastAccepted)
		}
		if len(green.writes) != 0 {
			t.Errorf("elapsed %d: unexpected green writes %v", elapsed, green.writes)
		}
	}
}

func TestEdgeAtWindowIsAccepted(t *testing.T) {
	for _, elapsed := range []uint32{200, 201, 300, 5000} {
		d, state, levels, _, clock := setupDetector(t)
		levels.joystick = true

		d.OnFallingEdge(JoystickButton)
		mid := state.Flags()

		clock.ms += elapsed
		if got := d.OnFallingEdge(JoystickButton); got != ToggleGreenBorder {
			t.Errorf("elapsed %d: expected GREEN_BORDER, got %s", elapsed, got)
		}
		if state.GreenLED() == mid.GreenLED || state.Border() == mid.Border {
			t.Errorf("elapsed %d: expected second flip", elapsed)
		}
	}
}

func TestActionPresses300msApart(t *testing.T) {
	d, state, levels, _, clock := setupDetector(t)
	if !state.RedPWM() || !state.BluePWM() {
		t.Fatal("expected red and blue enabled at power-on")
	}

	levels.action = true
	d.OnFallingEdge(ActionButton)
	if state.RedPWM() || state.BluePWM() {
		t.Errorf("after first press: expected red=false blue=false, got red=%v blue=%v", state.RedPWM(), state.BluePWM())
	}

	clock.ms += 300
	d.OnFallingEdge(ActionButton)
	if !state.RedPWM() || !state.BluePWM() {
		t.Errorf("after second press: expected red=true blue=true, got red=%v blue=%v", state.RedPWM(), state.BluePWM())
	}
}

func TestBounceBurstTogglesOnce(t *testing.T) {
	d, state, levels, _, clock := setupDetector(t)
	levels.joystick = true

	// Contact bounce: a burst of edges a few ms apart.
	accepted := 0
	for i := 0; i < 8; i++ {
		if d.OnFallingEdge(JoystickButton) != ToggleNone {
			accepted++
		}
		clock.ms += 3
	}
	if accepted != 1 {
		t.Errorf("expected 1 accepted edge, got %d", accepted)
	}
	if state.Presses().Joystick != 1 {
		t.Errorf("expected 1 joystick press counted, got %d", state.Presses().Joystick)
	}
	if state.GreenLED() {
		t.Error("expected green LED off after one press")
	}
	if !state.Border() {
		t.Error("expected border visible after one press")
	}
}

func TestJoystickWinsWhenBothAsserted(t *testing.T) {
	d, state, levels, _, _ := setupDetector(t)
	levels.joystick = true
	levels.action = true

	// The source argument does not decide the branch.
	if got := d.OnFallingEdge(ActionButton); got != ToggleGreenBorder {
		t.Errorf("expected GREEN_BORDER, got %s", got)
	}
	if !state.RedPWM() || !state.BluePWM() {
		t.Error("red/blue must not change when the joystick button is held")
	}
}

func TestAcceptedEdgeWithNoButtonHeld(t *testing.T) {
	d, state, _, _, clock := setupDetector(t)
	before := state.Flags()

	if got := d.OnFallingEdge(ActionButton); got != ToggleNone {
		t.Errorf("expected NONE, got %s", got)
	}
	if state.Flags() != before {
		t.Errorf("flags changed: %+v -> %+v", before, state.Flags())
	}
	// The window restarts even though nothing toggled.
	if d.lastAccepted != clock.ms {
		t.Errorf("expected lastAccepted=%d, got %d", clock.ms, d.lastAccepted)
	}
}

func TestEdgesDuringBootWindowAreDiscarded(t *testing.T) {
	state := NewState()
	levels := &fakeLevels{action: true}
	clock := &fakeClock{ms: 150}
	d := NewEdgeDetector(state, levels, nil, clock.now)

	if got := d.OnFallingEdge(ActionButton); got != ToggleNone {
		t.Errorf("expected edge 150ms after boot to be discarded, got %s", got)
	}
	clock.ms = 200
	if got := d.OnFallingEdge(ActionButton); got != ToggleRedBlue {
		t.Errorf("expected edge 200ms after boot to be accepted, got %s", got)
	}
}

func TestClockWraparound(t *testing.T) {
	d, state, levels, _, clock := setupDetector(t)
	levels.action = true

	clock.ms = 0xFFFFFFFF - 50
	d.OnFallingEdge(ActionButton)
	mid := state.RedPWM()

	clock.ms = 100 // 151ms later across the wrap
	if got := d.OnFallingEdge(ActionButton); got != ToggleNone {
		t.Errorf("expected bounce across wrap to be discarded, got %s", got)
	}
	clock.ms = 160 // 211ms later
	if got := d.OnFallingEdge(ActionButton); got != ToggleRedBlue {
		t.Errorf("expected edge across wrap to be accepted, got %s", got)
	}
	if state.RedPWM() == mid {
		t.Error("expected red to flip after wrap")
	}
}

func TestGreenLEDWriteErrorIsAbsorbed(t *testing.T) {
	d, state, levels, green, _ := setupDetector(t)
	green.err = errors.New("line busy")
	levels.joystick = true

	if got := d.OnFallingEdge(JoystickButton); got != ToggleGreenBorder {
		t.Fatalf("expected GREEN_BORDER, got %s", got)
	}
	if state.GreenLED() {
		t.Error("flag must flip even if the LED write fails")
	}
}

func TestNilGreenOutput(t *testing.T) {
	state := NewState()
	levels := &fakeLevels{joystick: true}
	d := NewEdgeDetector(state, levels, nil, func() uint32 { return 1000 })

	if got := d.OnFallingEdge(JoystickButton); got != ToggleGreenBorder {
		t.Errorf("expected GREEN_BORDER, got %s", got)
	}
}
