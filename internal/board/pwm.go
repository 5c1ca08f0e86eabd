//go:build rp2040

package board

import (
	"fmt"
	"machine"

	"github.com/sweeney/joypanel/internal/logic"
	"github.com/sweeney/joypanel/internal/pwm"
)

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetTop(top uint32)
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// PWM is one LED channel wrapping at logic.PWMPeriod, so duties are written
// unscaled.
type PWM struct {
	dev pwmDevice
	ch  uint8
}

// NewPWM configures the slice behind pin for a clock divider of pwm.Divider
// and a wrap of logic.PWMPeriod, and starts it at duty 0. The red and blue
// LEDs share a slice; configuring it twice is harmless.
func NewPWM(pin machine.Pin) (*PWM, error) {
	dev := pwmForPin(pin)
	if dev == nil {
		return nil, fmt.Errorf("pin %d has no PWM slice", pin)
	}
	if err := dev.Configure(machine.PWMConfig{Period: uint64(pwm.SlicePeriod)}); err != nil {
		return nil, fmt.Errorf("configure PWM for pin %d: %w", pin, err)
	}
	ch, err := dev.Channel(pin)
	if err != nil {
		return nil, fmt.Errorf("PWM channel for pin %d: %w", pin, err)
	}
	dev.SetTop(logic.PWMPeriod)
	dev.Set(ch, 0)
	dev.Enable(true)
	return &PWM{dev: dev, ch: ch}, nil
}

// Set writes a duty in ticks.
func (p *PWM) Set(duty uint32) error {
	if duty > logic.PWMPeriod {
		duty = logic.PWMPeriod
	}
	p.dev.Set(p.ch, duty)
	return nil
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}
