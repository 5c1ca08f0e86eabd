// Package gpio provides button and LED access with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

import "github.com/sweeney/joypanel/internal/logic"

// Buttons are the two active-low inputs. Both share one falling-edge handler.
type Buttons interface {
	// Asserted reports whether the button's line is currently low.
	// A line that cannot be read reports false.
	Asserted(b logic.Button) bool

	// OnFallingEdge sets the handler for falling edges on either line.
	// Edges arriving before a handler is set are dropped.
	OnFallingEdge(fn func(logic.Button))

	// Close releases GPIO resources.
	Close() error
}

// LED is a digital output line.
type LED interface {
	Set(on bool) error
	Close() error
}

// Pin definitions (BCM numbering)
const (
	DefaultPinJoystick = 22 // joystick push switch
	DefaultPinAction   = 5  // button A
	DefaultPinGreen    = 11 // green LED
)
