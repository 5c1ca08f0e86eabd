// Package pwm drives the LED brightness channels.
package pwm

import (
	"time"

	"github.com/sweeney/joypanel/internal/logic"
)

// Timing of the reference board: a 125 MHz system clock divided by 16,
// wrapping at logic.PWMPeriod. One cycle is PWMPeriod+1 ticks.
const (
	Divider    = 16
	sysClockHz = 125_000_000

	TickPeriod    = time.Duration(Divider * (1e9 / sysClockHz))
	DefaultPeriod = (logic.PWMPeriod + 1) * TickPeriod
)

// SlicePeriod is the period an RP2040 slice is configured with. The machine
// package derives the clock divider from a wrap near 95% of 0xffff; this
// period makes that search settle on exactly Divider. The wrap is set to
// logic.PWMPeriod afterwards, leaving the divider alone.
const SlicePeriod = Divider * (1e9 / sysClockHz) * (searchTop + 2) * time.Nanosecond

// searchTop is the starting wrap of the divider search.
const searchTop = 95 * 0xffff / 100

// Channel is one PWM output. Set takes a duty in ticks, 0..logic.PWMPeriod.
type Channel interface {
	Set(duty uint32) error
}

// clampDuty limits a duty to the wrap value.
func clampDuty(duty uint32) uint32 {
	if duty > logic.PWMPeriod {
		return logic.PWMPeriod
	}
	return duty
}
