//go:build linux && !tinygo

package gpio

import (
	"fmt"
	"sync/atomic"

	"github.com/sweeney/joypanel/internal/logic"
	"github.com/warthog618/go-gpiocdev"
)

// RealButtons reads the buttons from actual hardware using the Linux GPIO
// character device. Both lines are requested together so their edges are
// delivered one at a time by a single watcher goroutine.
type RealButtons struct {
	chip    *gpiocdev.Chip
	lines   *gpiocdev.Lines
	offsets [2]int // indexed by logic.Button
	handler atomic.Value
}

// NewRealButtons requests both lines as inputs with pull-ups and arms them
// for falling edges.
func NewRealButtons(chipName string, pinJoystick, pinAction int) (*RealButtons, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	b := &RealButtons{
		chip:    chip,
		offsets: [2]int{pinJoystick, pinAction},
	}

	lines, err := chip.RequestLines(b.offsets[:],
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(b.dispatch))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request button pins %d,%d: %w", pinJoystick, pinAction, err)
	}
	b.lines = lines

	return b, nil
}

// OnFallingEdge sets the edge handler.
func (b *RealButtons) OnFallingEdge(fn func(logic.Button)) {
	b.handler.Store(fn)
}

func (b *RealButtons) dispatch(evt gpiocdev.LineEvent) {
	fn, _ := b.handler.Load().(func(logic.Button))
	if fn == nil {
		return
	}
	source := logic.JoystickButton
	if evt.Offset == b.offsets[logic.ActionButton] {
		source = logic.ActionButton
	}
	fn(source)
}

// Asserted reports whether the button is held. Lines are active low.
func (b *RealButtons) Asserted(btn logic.Button) bool {
	var vals [2]int
	if err := b.lines.Values(vals[:]); err != nil {
		return false
	}
	return vals[btn] == 0
}

// Close releases the lines and the chip.
func (b *RealButtons) Close() error {
	var errs []error

	if b.lines != nil {
		if err := b.lines.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button lines: %w", err))
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// RealLED drives an LED from a GPIO output line.
type RealLED struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewRealLED requests the line as an output at the initial level.
func NewRealLED(chipName string, pin int, initial bool) (*RealLED, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(level(initial)))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request LED pin %d: %w", pin, err)
	}

	return &RealLED{chip: chip, line: line}, nil
}

// Set drives the line high (on) or low.
func (l *RealLED) Set(on bool) error {
	if err := l.line.SetValue(level(on)); err != nil {
		return fmt.Errorf("set LED: %w", err)
	}
	return nil
}

// Close turns the LED off and releases the line.
func (l *RealLED) Close() error {
	var errs []error

	if l.line != nil {
		if err := l.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("turn off LED: %w", err))
		}
		if err := l.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close LED line: %w", err))
		}
	}
	if l.chip != nil {
		if err := l.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

func level(on bool) int {
	if on {
		return 1
	}
	return 0
}
