//go:build !linux || tinygo

package gpio

import (
	"errors"

	"github.com/sweeney/joypanel/internal/logic"
)

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// RealButtons is not available on non-Linux platforms.
type RealButtons struct{}

// NewRealButtons returns an error on non-Linux platforms.
func NewRealButtons(chipName string, pinJoystick, pinAction int) (*RealButtons, error) {
	return nil, errUnsupported
}

// Asserted is not implemented on non-Linux platforms.
func (b *RealButtons) Asserted(btn logic.Button) bool { return false }

// OnFallingEdge is not implemented on non-Linux platforms.
func (b *RealButtons) OnFallingEdge(fn func(logic.Button)) {}

// Close is not implemented on non-Linux platforms.
func (b *RealButtons) Close() error { return nil }

// RealLED is not available on non-Linux platforms.
type RealLED struct{}

// NewRealLED returns an error on non-Linux platforms.
func NewRealLED(chipName string, pin int, initial bool) (*RealLED, error) {
	return nil, errUnsupported
}

// Set is not implemented on non-Linux platforms.
func (l *RealLED) Set(on bool) error { return errUnsupported }

// Close is not implemented on non-Linux platforms.
func (l *RealLED) Close() error { return nil }
