//go:build rp2040

package board

import (
	"fmt"
	"machine"
)

// ADC is the on-chip converter, multiplexed over the joystick inputs.
type ADC struct {
	inputs   []machine.ADC
	selected int
}

// NewADC initialises the converter. Channel n reads pins[n].
func NewADC(pins ...machine.Pin) *ADC {
	machine.InitADC()
	a := &ADC{selected: -1}
	for _, p := range pins {
		in := machine.ADC{Pin: p}
		in.Configure(machine.ADCConfig{})
		a.inputs = append(a.inputs, in)
	}
	return a
}

// Select routes channel to the converter.
func (a *ADC) Select(channel int) error {
	if channel < 0 || channel >= len(a.inputs) {
		return fmt.Errorf("no ADC channel %d", channel)
	}
	a.selected = channel
	return nil
}

// Read converts the selected channel. machine.ADC scales to 16 bits; the
// result is shifted back to the converter's 12.
func (a *ADC) Read() (uint16, error) {
	if a.selected < 0 {
		return 0, fmt.Errorf("no ADC channel selected")
	}
	return a.inputs[a.selected].Get() >> 4, nil
}
