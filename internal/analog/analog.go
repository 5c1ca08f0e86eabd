// Package analog samples the joystick through a multiplexed ADC.
package analog

import (
	"fmt"
	"time"

	"github.com/sweeney/joypanel/internal/logic"
)

// Settle is the wait between selecting a channel and reading it.
const Settle = 2 * time.Microsecond

// Converter is a multiplexed analog-to-digital converter returning 12-bit
// readings from the selected channel.
type Converter interface {
	Select(channel int) error
	Read() (uint16, error)
}

// Sampler reads both joystick axes.
type Sampler struct {
	adc      Converter
	hChannel int
	vChannel int
	sleep    func(time.Duration)
}

// NewSampler creates a Sampler reading the horizontal axis from hChannel and
// the vertical axis from vChannel.
func NewSampler(adc Converter, hChannel, vChannel int) *Sampler {
	return &Sampler{
		adc:      adc,
		hChannel: hChannel,
		vChannel: vChannel,
		sleep:    time.Sleep,
	}
}

// Sample reads the horizontal then the vertical axis. Readings above full
// scale are clamped here so the mapper can trust its range.
func (s *Sampler) Sample() (logic.Sample, error) {
	h, err := s.read(s.hChannel)
	if err != nil {
		return logic.Sample{}, fmt.Errorf("read horizontal axis: %w", err)
	}
	v, err := s.read(s.vChannel)
	if err != nil {
		return logic.Sample{}, fmt.Errorf("read vertical axis: %w", err)
	}
	return logic.Sample{H: h, V: v}, nil
}

func (s *Sampler) read(channel int) (uint16, error) {
	if err := s.adc.Select(channel); err != nil {
		return 0, fmt.Errorf("select channel %d: %w", channel, err)
	}
	s.sleep(Settle)
	raw, err := s.adc.Read()
	if err != nil {
		return 0, err
	}
	if raw > logic.FullScale {
		raw = logic.FullScale
	}
	return raw, nil
}
