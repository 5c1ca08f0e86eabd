// Package logic contains the hardware-free core of the panel: the shared toggle
// state, the debounced edge handler and the analog mapping.
// This package has NO peripheral dependencies. Time is injected through a Clock.
package logic

import "time"

// Hardware-defined ranges.
const (
	FullScale = 4095 // maximum raw ADC reading
	HalfScale = 2048 // raw reading with the stick at rest
	DeadZone  = 250  // deflection at or below this is treated as zero
	PWMPeriod = 4096 // PWM wrap value; duties are in [0, PWMPeriod]
)

// DebounceWindow is the minimum spacing between two accepted button edges.
const DebounceWindow = 200 * time.Millisecond

// Button identifies one of the two active-low inputs sharing the edge handler.
type Button uint8

const (
	JoystickButton Button = iota // push switch on the joystick
	ActionButton                 // button A
)

func (b Button) String() string {
	switch b {
	case JoystickButton:
		return "JOYSTICK"
	case ActionButton:
		return "ACTION"
	}
	return "UNKNOWN"
}

// Toggle reports which flag pair an accepted edge flipped.
type Toggle uint8

const (
	ToggleNone        Toggle = iota // rejected by debounce, or no button asserted
	ToggleGreenBorder               // green LED and border flipped together
	ToggleRedBlue                   // red and blue PWM flipped together
)

func (t Toggle) String() string {
	switch t {
	case ToggleGreenBorder:
		return "GREEN_BORDER"
	case ToggleRedBlue:
		return "RED_BLUE"
	}
	return "NONE"
}

// Sample is one raw joystick reading. Both axes are in 0..FullScale.
type Sample struct {
	H uint16 // horizontal axis, drives red
	V uint16 // vertical axis, drives blue
}

// Point is a display coordinate in pixels, origin top-left.
type Point struct {
	X int16
	Y int16
}

// Flags is a point-in-time copy of the shared toggles.
type Flags struct {
	GreenLED bool
	RedPWM   bool
	BluePWM  bool
	Border   bool
}

// PressCounts holds the number of accepted presses per button.
type PressCounts struct {
	Joystick uint32
	Action   uint32
}
