package logic

import "sync/atomic"

// State is the set of toggles shared between the edge handler and the
// control loop.
//
// Every field is an independent word accessed atomically, and no consumer
// needs two fields to change together, so there is no lock. A flip that lands
// while the loop is mid-iteration takes effect on the next iteration.
type State struct {
	greenLED atomic.Bool
	redPWM   atomic.Bool
	bluePWM  atomic.Bool
	border   atomic.Bool

	joystickPresses atomic.Uint32
	actionPresses   atomic.Uint32
}

// NewState returns the power-on state: all LEDs enabled, border hidden.
func NewState() *State {
	return NewStateFrom(Flags{GreenLED: true, RedPWM: true, BluePWM: true})
}

// NewStateFrom returns a state initialised with the given flags.
func NewStateFrom(f Flags) *State {
	s := &State{}
	s.greenLED.Store(f.GreenLED)
	s.redPWM.Store(f.RedPWM)
	s.bluePWM.Store(f.BluePWM)
	s.border.Store(f.Border)
	return s
}

func (s *State) GreenLED() bool { return s.greenLED.Load() }
func (s *State) RedPWM() bool   { return s.redPWM.Load() }
func (s *State) BluePWM() bool  { return s.bluePWM.Load() }
func (s *State) Border() bool   { return s.border.Load() }

// Flags loads each toggle once. The copy is not an atomic view of the group.
func (s *State) Flags() Flags {
	return Flags{
		GreenLED: s.greenLED.Load(),
		RedPWM:   s.redPWM.Load(),
		BluePWM:  s.bluePWM.Load(),
		Border:   s.border.Load(),
	}
}

// Presses returns the accepted press counters.
func (s *State) Presses() PressCounts {
	return PressCounts{
		Joystick: s.joystickPresses.Load(),
		Action:   s.actionPresses.Load(),
	}
}

// toggleGreenBorder flips the green LED and border flags and returns the new
// green LED value.
func (s *State) toggleGreenBorder() bool {
	green := flip(&s.greenLED)
	flip(&s.border)
	s.joystickPresses.Add(1)
	return green
}

func (s *State) toggleRedBlue() {
	flip(&s.redPWM)
	flip(&s.bluePWM)
	s.actionPresses.Add(1)
}

// flip inverts b and returns the value it now holds.
func flip(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
