package logic

// Levels samples the current state of the buttons. Buttons are active low:
// Asserted reports true while the line is held low.
type Levels interface {
	Asserted(b Button) bool
}

// Output drives a single digital output line.
type Output interface {
	Set(on bool) error
}

// Clock returns monotonic milliseconds since boot. Callers may let it wrap.
type Clock func() uint32

// EdgeDetector is the handler for falling edges on both buttons.
//
// OnFallingEdge runs in interrupt (or edge-watcher) context and must not be
// called concurrently with itself. lastAccepted is owned by that context; the
// only state it shares with the control loop is the State it toggles.
type EdgeDetector struct {
	state  *State
	levels Levels
	green  Output
	now    Clock
	window uint32

	lastAccepted uint32
}

// NewEdgeDetector creates a handler that toggles state and drives the green
// LED directly. green may be nil.
func NewEdgeDetector(state *State, levels Levels, green Output, now Clock) *EdgeDetector {
	return &EdgeDetector{
		state:  state,
		levels: levels,
		green:  green,
		now:    now,
		window: uint32(DebounceWindow.Milliseconds()),
	}
}

// OnFallingEdge handles one falling edge. source names the line that fired but
// does not decide the action: both lines share the handler, so the current
// levels are re-sampled after the edge clears the debounce window.
//
// An edge within the window of the previous accepted one is discarded without
// any state change. The timestamp is taken before the levels are inspected, so
// an accepted edge with neither button still held only restarts the window.
func (d *EdgeDetector) OnFallingEdge(source Button) Toggle {
	now := d.now()
	if now-d.lastAccepted < d.window {
		return ToggleNone
	}
	d.lastAccepted = now

	switch {
	case d.levels.Asserted(JoystickButton):
		on := d.state.toggleGreenBorder()
		if d.green != nil {
			// Nowhere to report from here; the next edge rewrites the line.
			_ = d.green.Set(on)
		}
		return ToggleGreenBorder
	case d.levels.Asserted(ActionButton):
		d.state.toggleRedBlue()
		return ToggleRedBlue
	}
	return ToggleNone
}
